package domain

import "time"

// Bookmark represents a saved link owned by exactly one user.
type Bookmark struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier, assigned by the store on
	// creation.
	ID string `json:"id"`

	// UserID is the owning user. Set at creation, never changed by a
	// client. Every read and write is qualified by it.
	UserID string `json:"user_id"`

	// ─────────────────────────────
	// User-editable fields
	// ─────────────────────────────

	// Name is the non-empty display label.
	Name string `json:"name"`

	// URL is the absolute URL the bookmark points to.
	URL string `json:"url"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// Category is one of Categories.
	Category string `json:"category"`

	// Icon is a symbolic name from Icons. Unknown values fall back to a
	// default icon at render time; they are not a data error.
	Icon string `json:"icon"`

	// Color is a gradient identifier from Colors.
	Color string `json:"color"`

	// ─────────────────────────────
	// Metadata (store-assigned)
	// ─────────────────────────────

	// CreatedAt drives the recency sort. The zero value sorts as
	// epoch-zero.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped on any mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// Candidate holds the client-supplied fields of a bookmark before it has
// an identity. The store assigns ID, UserID and timestamps.
type Candidate struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// Patch is a partial update of the user-editable fields. Nil means
// "leave unchanged".
type Patch struct {
	Name        *string `json:"name,omitempty"`
	URL         *string `json:"url,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// Empty reports whether the patch touches nothing.
func (p Patch) Empty() bool {
	return p.Name == nil && p.URL == nil && p.Description == nil &&
		p.Category == nil && p.Icon == nil && p.Color == nil
}

// Apply copies the set fields of the patch onto b.
func (p Patch) Apply(b *Bookmark) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.URL != nil {
		b.URL = *p.URL
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.Icon != nil {
		b.Icon = *p.Icon
	}
	if p.Color != nil {
		b.Color = *p.Color
	}
}

// Closed enumerations for the select fields. The shell only offers these
// values; the validator rejects anything else.
var Categories = []string{
	"Development",
	"Social Media",
	"Entertainment",
	"Design",
	"Productivity",
	"Communication",
	"Other",
}

var Icons = []string{
	"Github",
	"Twitter",
	"Youtube",
	"Figma",
	"Notion",
	"Slack",
	"Globe",
}

// DefaultIcon is the render-time fallback for unknown icon names.
const DefaultIcon = "Globe"

var Colors = []string{
	"from-primary to-primary-dark",
	"from-primary-light to-primary",
	"from-accent-orange to-primary-dark",
	"from-accent-yellow to-accent-orange",
	"from-primary to-primary-light",
	"from-primary-dark to-primary",
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// ValidCategory reports whether v is a known category.
func ValidCategory(v string) bool { return contains(Categories, v) }

// ValidIcon reports whether v is a known icon name.
func ValidIcon(v string) bool { return contains(Icons, v) }

// ValidColor reports whether v is a known gradient identifier.
func ValidColor(v string) bool { return contains(Colors, v) }
