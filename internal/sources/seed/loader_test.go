package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookmarks.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeSeedFile(t, `
- name: GitHub
  url: https://github.com
  description: code hosting
  category: Development
  icon: Github
  color: from-primary to-primary-dark
- name: Slack
  url: https://slack.com
`)

	config, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(config) != 2 {
		t.Fatalf("Load() parsed %d entries, want 2", len(config))
	}
	if config[0].Name != "GitHub" || config[0].Icon != "Github" {
		t.Errorf("Load() first entry = %+v", config[0])
	}
	if config[1].Category != "" {
		t.Errorf("Load() second entry category = %q, want empty", config[1].Category)
	}
}

func TestLoaderLoadMissingFile(t *testing.T) {
	_, err := NewLoader("/nonexistent/bookmarks.yaml").Load()
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
}

func TestLoaderLoadInvalidYAML(t *testing.T) {
	path := writeSeedFile(t, "{{{not yaml")

	_, err := NewLoader(path).Load()
	if err == nil {
		t.Fatal("Load() should fail for invalid yaml")
	}
}
