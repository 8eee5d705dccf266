package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// Validation failure reasons.
const (
	ReasonEmptyField       = "empty_field"
	ReasonMalformedURL     = "malformed_url"
	ReasonInvalidEnumValue = "invalid_enum_value"
)

// FieldError describes a single failed field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate checks a candidate before submission. All failing fields are
// reported in one pass; an empty result means the candidate is
// submittable. Enum checks are defensive: the shell only offers
// enumerated choices.
func Validate(c Candidate) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Reason: ReasonEmptyField})
	}

	switch {
	case strings.TrimSpace(c.URL) == "":
		errs = append(errs, FieldError{Field: "url", Reason: ReasonEmptyField})
	case !IsAbsoluteURL(c.URL):
		errs = append(errs, FieldError{Field: "url", Reason: ReasonMalformedURL})
	}

	if !ValidCategory(c.Category) {
		errs = append(errs, FieldError{Field: "category", Reason: ReasonInvalidEnumValue})
	}
	if !ValidIcon(c.Icon) {
		errs = append(errs, FieldError{Field: "icon", Reason: ReasonInvalidEnumValue})
	}
	if !ValidColor(c.Color) {
		errs = append(errs, FieldError{Field: "color", Reason: ReasonInvalidEnumValue})
	}

	return errs
}

// ValidatePatch checks only the fields a partial update touches.
func ValidatePatch(p Patch) []FieldError {
	var errs []FieldError

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Reason: ReasonEmptyField})
	}
	if p.URL != nil {
		switch {
		case strings.TrimSpace(*p.URL) == "":
			errs = append(errs, FieldError{Field: "url", Reason: ReasonEmptyField})
		case !IsAbsoluteURL(*p.URL):
			errs = append(errs, FieldError{Field: "url", Reason: ReasonMalformedURL})
		}
	}
	if p.Category != nil && !ValidCategory(*p.Category) {
		errs = append(errs, FieldError{Field: "category", Reason: ReasonInvalidEnumValue})
	}
	if p.Icon != nil && !ValidIcon(*p.Icon) {
		errs = append(errs, FieldError{Field: "icon", Reason: ReasonInvalidEnumValue})
	}
	if p.Color != nil && !ValidColor(*p.Color) {
		errs = append(errs, FieldError{Field: "color", Reason: ReasonInvalidEnumValue})
	}

	return errs
}

// IsAbsoluteURL reports whether s parses as an absolute URL with both a
// scheme and a host.
func IsAbsoluteURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
