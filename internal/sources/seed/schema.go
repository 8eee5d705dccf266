package seed

// Entry is a single bookmark in the seed file. Category, icon and color
// are optional; the mapper fills in defaults.
type Entry struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
}

// Config is the root structure of the seed yaml: a flat list of entries.
type Config []Entry
