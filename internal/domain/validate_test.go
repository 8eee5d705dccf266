package domain

import "testing"

func validCandidate() Candidate {
	return Candidate{
		Name:     "GitHub",
		URL:      "https://github.com",
		Category: "Development",
		Icon:     "Github",
		Color:    Colors[0],
	}
}

func TestValidateOK(t *testing.T) {
	if errs := Validate(validCandidate()); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Candidate)
		wantField  string
		wantReason string
	}{
		{
			name:       "blank name",
			mutate:     func(c *Candidate) { c.Name = "   " },
			wantField:  "name",
			wantReason: ReasonEmptyField,
		},
		{
			name:       "empty url",
			mutate:     func(c *Candidate) { c.URL = "" },
			wantField:  "url",
			wantReason: ReasonEmptyField,
		},
		{
			name:       "relative url",
			mutate:     func(c *Candidate) { c.URL = "not-a-url" },
			wantField:  "url",
			wantReason: ReasonMalformedURL,
		},
		{
			name:       "scheme without host",
			mutate:     func(c *Candidate) { c.URL = "https://" },
			wantField:  "url",
			wantReason: ReasonMalformedURL,
		},
		{
			name:       "unknown category",
			mutate:     func(c *Candidate) { c.Category = "Gardening" },
			wantField:  "category",
			wantReason: ReasonInvalidEnumValue,
		},
		{
			name:       "unknown icon",
			mutate:     func(c *Candidate) { c.Icon = "Sparkles" },
			wantField:  "icon",
			wantReason: ReasonInvalidEnumValue,
		},
		{
			name:       "unknown color",
			mutate:     func(c *Candidate) { c.Color = "chartreuse" },
			wantField:  "color",
			wantReason: ReasonInvalidEnumValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			tt.mutate(&c)

			errs := Validate(c)
			if len(errs) != 1 {
				t.Fatalf("Validate() = %v, want exactly one error", errs)
			}
			if errs[0].Field != tt.wantField || errs[0].Reason != tt.wantReason {
				t.Errorf("Validate() = %v, want {%s %s}", errs[0], tt.wantField, tt.wantReason)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	c := Candidate{Name: "", URL: "nope", Category: "x", Icon: "y", Color: "z"}

	errs := Validate(c)
	if len(errs) != 5 {
		t.Fatalf("Validate() reported %d errors, want 5: %v", len(errs), errs)
	}

	fields := make(map[string]bool, len(errs))
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, f := range []string{"name", "url", "category", "icon", "color"} {
		if !fields[f] {
			t.Errorf("Validate() missing error for field %q", f)
		}
	}
}

func TestValidatePatch(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name     string
		patch    Patch
		wantErrs int
	}{
		{name: "empty patch", patch: Patch{}, wantErrs: 0},
		{name: "name only", patch: Patch{Name: str("Docs")}, wantErrs: 0},
		{name: "blank name", patch: Patch{Name: str(" ")}, wantErrs: 1},
		{name: "bad url", patch: Patch{URL: str("not-a-url")}, wantErrs: 1},
		{name: "untouched fields not checked", patch: Patch{Description: str("")}, wantErrs: 0},
		{name: "bad enum", patch: Patch{Icon: str("Sparkles")}, wantErrs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if errs := ValidatePatch(tt.patch); len(errs) != tt.wantErrs {
				t.Errorf("ValidatePatch() = %v, want %d errors", errs, tt.wantErrs)
			}
		})
	}
}

func TestIsAbsoluteURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://x.com", true},
		{"http://localhost:3000/path", true},
		{"ftp://files.example.com", true},
		{"not-a-url", false},
		{"/relative/path", false},
		{"https://", false},
		{"example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsAbsoluteURL(tt.url); got != tt.want {
			t.Errorf("IsAbsoluteURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}
