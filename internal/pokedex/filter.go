package pokedex

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Filter is the transient list-filter state. Zero value means no
// filtering at all.
type Filter struct {
	Query         string
	FavoritesOnly bool
	Fuzzy         bool
}

// Apply returns the subsequence of entries matching the filter, in the
// original catalog order. The favorites predicate runs before the text
// predicate. An empty query is the identity transform; an empty
// catalog yields an empty result.
func Apply(entries []Entry, f Filter) []Entry {
	out := entries
	if f.FavoritesOnly {
		kept := make([]Entry, 0, len(out))
		for _, e := range out {
			if e.Favorite {
				kept = append(kept, e)
			}
		}
		out = kept
	}
	q := strings.TrimSpace(f.Query)
	if q == "" {
		return out
	}
	kept := make([]Entry, 0, len(out))
	for _, e := range out {
		if matches(e.Name, q, f.Fuzzy) {
			kept = append(kept, e)
		}
	}
	return kept
}

func matches(name, query string, useFuzzy bool) bool {
	if useFuzzy {
		return fuzzy.MatchNormalizedFold(query, name)
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}
