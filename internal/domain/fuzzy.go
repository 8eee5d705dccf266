package domain

import "github.com/sahilm/fuzzy"

// bookmarkNames implements fuzzy.Source over a bookmark slice.
type bookmarkNames []Bookmark

func (bn bookmarkNames) String(i int) string { return bn[i].Name }
func (bn bookmarkNames) Len() int            { return len(bn) }

// FuzzyRank matches bookmark names against query and returns them best
// match first. An empty query returns the collection unchanged; no match
// returns an empty slice. Like Filter it never mutates its input.
func FuzzyRank(collection []Bookmark, query string) []Bookmark {
	if query == "" {
		out := make([]Bookmark, len(collection))
		copy(out, collection)
		return out
	}

	matches := fuzzy.FindFrom(query, bookmarkNames(collection))

	out := make([]Bookmark, 0, len(matches))
	for _, m := range matches {
		out = append(out, collection[m.Index])
	}
	return out
}
