package domain

import (
	"sort"
	"strings"
)

// FilterMode selects the second stage of the view derivation.
type FilterMode string

const (
	FilterAll      FilterMode = "all"
	FilterCategory FilterMode = "category"
	FilterIcon     FilterMode = "icon"
	FilterColor    FilterMode = "color"
	FilterRecent   FilterMode = "recent"
	FilterOldest   FilterMode = "oldest"
)

// FilterValueAll is the pass-through filter value. Switching modes in the
// shell resets the value to it, so a missing value means the same thing.
const FilterValueAll = "all"

// ParseFilterMode maps a raw query parameter to a mode. Unknown or empty
// input falls back to FilterAll.
func ParseFilterMode(s string) FilterMode {
	switch FilterMode(strings.ToLower(strings.TrimSpace(s))) {
	case FilterCategory:
		return FilterCategory
	case FilterIcon:
		return FilterIcon
	case FilterColor:
		return FilterColor
	case FilterRecent:
		return FilterRecent
	case FilterOldest:
		return FilterOldest
	default:
		return FilterAll
	}
}

// Filter derives an ordered view of the collection. It is pure: the input
// slice is never mutated and the same arguments always produce the same
// result.
//
// Stages, in order:
//  1. search: case-insensitive substring over name, description, URL and
//     category; empty query keeps everything.
//  2. filter: category/icon/color keep only equal values ("all" passes
//     everything through); recent/oldest do not filter.
//  3. order: recent = created_at descending, oldest = ascending, both
//     stable so equal timestamps keep their input order. Every other mode
//     preserves the incoming order unchanged.
func Filter(collection []Bookmark, query string, mode FilterMode, value string) []Bookmark {
	out := make([]Bookmark, 0, len(collection))

	query = strings.ToLower(strings.TrimSpace(query))
	for _, b := range collection {
		if query != "" && !matchesQuery(b, query) {
			continue
		}
		if !matchesFilter(b, mode, value) {
			continue
		}
		out = append(out, b)
	}

	switch mode {
	case FilterRecent:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case FilterOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	}

	return out
}

func matchesQuery(b Bookmark, query string) bool {
	return strings.Contains(strings.ToLower(b.Name), query) ||
		strings.Contains(strings.ToLower(b.Description), query) ||
		strings.Contains(strings.ToLower(b.URL), query) ||
		strings.Contains(strings.ToLower(b.Category), query)
}

func matchesFilter(b Bookmark, mode FilterMode, value string) bool {
	if value == "" || value == FilterValueAll {
		return true
	}
	switch mode {
	case FilterCategory:
		return b.Category == value
	case FilterIcon:
		return b.Icon == value
	case FilterColor:
		return b.Color == value
	default:
		// all/recent/oldest never filter by value.
		return true
	}
}
