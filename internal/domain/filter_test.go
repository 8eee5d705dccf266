package domain

import (
	"testing"
	"time"
)

func testCollection() []Bookmark {
	return []Bookmark{
		{
			Name:      "GitHub",
			URL:       "https://github.com",
			Category:  "Development",
			Icon:      "Github",
			Color:     Colors[0],
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:        "Slack",
			URL:         "https://slack.com",
			Description: "team chat",
			Category:    "Communication",
			Icon:        "Slack",
			Color:       Colors[1],
			CreatedAt:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:      "Figma",
			URL:       "https://figma.com",
			Category:  "Design",
			Icon:      "Figma",
			Color:     Colors[0],
			CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func names(bs []Bookmark) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.Name
	}
	return out
}

func assertNames(t *testing.T, got []Bookmark, want ...string) {
	t.Helper()
	gotNames := names(got)
	if len(gotNames) != len(want) {
		t.Fatalf("got %v, want %v", gotNames, want)
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Fatalf("got %v, want %v", gotNames, want)
		}
	}
}

func TestFilterIdentity(t *testing.T) {
	collection := testCollection()

	got := Filter(collection, "", FilterAll, FilterValueAll)
	assertNames(t, got, "GitHub", "Slack", "Figma")
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	collection := testCollection()

	_ = Filter(collection, "", FilterRecent, FilterValueAll)

	assertNames(t, collection, "GitHub", "Slack", "Figma")
}

func TestFilterSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "matches name case-insensitively", query: "git", want: []string{"GitHub"}},
		{name: "matches description", query: "team chat", want: []string{"Slack"}},
		{name: "matches url", query: "figma.com", want: []string{"Figma"}},
		{name: "matches category", query: "communication", want: []string{"Slack"}},
		{name: "no match", query: "zebra", want: []string{}},
		{name: "empty keeps everything", query: "", want: []string{"GitHub", "Slack", "Figma"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testCollection(), tt.query, FilterAll, FilterValueAll)
			assertNames(t, got, tt.want...)
		})
	}
}

func TestFilterByField(t *testing.T) {
	tests := []struct {
		name  string
		mode  FilterMode
		value string
		want  []string
	}{
		{name: "category", mode: FilterCategory, value: "Development", want: []string{"GitHub"}},
		{name: "icon", mode: FilterIcon, value: "Slack", want: []string{"Slack"}},
		{name: "color", mode: FilterColor, value: Colors[0], want: []string{"GitHub", "Figma"}},
		{name: "value all passes through", mode: FilterCategory, value: FilterValueAll, want: []string{"GitHub", "Slack", "Figma"}},
		{name: "missing value passes through", mode: FilterCategory, value: "", want: []string{"GitHub", "Slack", "Figma"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testCollection(), "", tt.mode, tt.value)
			assertNames(t, got, tt.want...)

			// Every survivor satisfies the predicate.
			for _, b := range got {
				switch tt.mode {
				case FilterCategory:
					if tt.value != FilterValueAll && tt.value != "" && b.Category != tt.value {
						t.Errorf("bookmark %q leaked through category filter", b.Name)
					}
				case FilterIcon:
					if tt.value != FilterValueAll && tt.value != "" && b.Icon != tt.value {
						t.Errorf("bookmark %q leaked through icon filter", b.Name)
					}
				case FilterColor:
					if tt.value != FilterValueAll && tt.value != "" && b.Color != tt.value {
						t.Errorf("bookmark %q leaked through color filter", b.Name)
					}
				}
			}
		})
	}
}

func TestFilterOrdering(t *testing.T) {
	collection := testCollection()

	recent := Filter(collection, "", FilterRecent, FilterValueAll)
	assertNames(t, recent, "Slack", "Figma", "GitHub")

	oldest := Filter(collection, "", FilterOldest, FilterValueAll)
	assertNames(t, oldest, "GitHub", "Figma", "Slack")

	// recent and oldest are exact inverses of each other
	for i := range recent {
		if recent[i].Name != oldest[len(oldest)-1-i].Name {
			t.Fatalf("recent %v and oldest %v are not inverses", names(recent), names(oldest))
		}
	}
}

func TestFilterRecentScenario(t *testing.T) {
	collection := []Bookmark{
		{Name: "Repo", Category: "Development", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "Chat", Category: "Communication", CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	got := Filter(collection, "", FilterRecent, FilterValueAll)
	assertNames(t, got, "Chat", "Repo")
}

func TestFilterStableOnEqualTimestamps(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	collection := []Bookmark{
		{Name: "A", CreatedAt: ts},
		{Name: "B", CreatedAt: ts},
		{Name: "C", CreatedAt: ts},
	}

	got := Filter(collection, "", FilterRecent, FilterValueAll)
	assertNames(t, got, "A", "B", "C")
}

func TestFilterMissingTimestampSortsAsEpoch(t *testing.T) {
	collection := []Bookmark{
		{Name: "NoTimestamp"}, // zero CreatedAt
		{Name: "Dated", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	got := Filter(collection, "", FilterRecent, FilterValueAll)
	assertNames(t, got, "Dated", "NoTimestamp")
}

func TestFilterIdempotent(t *testing.T) {
	collection := testCollection()

	first := Filter(collection, "a", FilterRecent, FilterValueAll)
	second := Filter(collection, "a", FilterRecent, FilterValueAll)

	assertNames(t, second, names(first)...)
}

func TestFilterSearchThenFilter(t *testing.T) {
	// search stage runs before the field filter
	got := Filter(testCollection(), "com", FilterCategory, "Design")
	assertNames(t, got, "Figma")
}

func TestParseFilterMode(t *testing.T) {
	tests := []struct {
		input string
		want  FilterMode
	}{
		{"category", FilterCategory},
		{"ICON", FilterIcon},
		{" recent ", FilterRecent},
		{"oldest", FilterOldest},
		{"color", FilterColor},
		{"", FilterAll},
		{"bogus", FilterAll},
	}

	for _, tt := range tests {
		if got := ParseFilterMode(tt.input); got != tt.want {
			t.Errorf("ParseFilterMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFuzzyRank(t *testing.T) {
	collection := testCollection()

	got := FuzzyRank(collection, "gthb")
	if len(got) == 0 || got[0].Name != "GitHub" {
		t.Errorf("FuzzyRank() = %v, want GitHub first", names(got))
	}

	all := FuzzyRank(collection, "")
	assertNames(t, all, "GitHub", "Slack", "Figma")

	none := FuzzyRank(collection, "qqqq")
	if len(none) != 0 {
		t.Errorf("FuzzyRank() with no match = %v, want empty", names(none))
	}
}
