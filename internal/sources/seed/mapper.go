package seed

import (
	"github.com/pbriand/marque/internal/domain"
)

// Mapper converts seed entries to bookmark candidates.
type Mapper struct{}

// NewMapper creates a seed mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapCandidates normalizes and validates the seed entries. Entries that
// still fail validation after defaulting are dropped; the skipped count
// lets the caller log how many.
func (m *Mapper) MapCandidates(config Config) ([]domain.Candidate, int) {
	candidates := make([]domain.Candidate, 0, len(config))
	skipped := 0

	for _, entry := range config {
		c := domain.Candidate{
			Name:        entry.Name,
			URL:         entry.URL,
			Description: entry.Description,
			Category:    entry.Category,
			Icon:        entry.Icon,
			Color:       entry.Color,
		}

		// Optional fields default instead of failing the entry.
		if c.Category == "" {
			c.Category = "Other"
		}
		if c.Icon == "" {
			c.Icon = domain.DefaultIcon
		}
		if c.Color == "" {
			c.Color = domain.Colors[0]
		}

		if errs := domain.Validate(c); len(errs) > 0 {
			skipped++
			continue
		}

		candidates = append(candidates, c)
	}

	return candidates, skipped
}
