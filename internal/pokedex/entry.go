// Package pokedex holds the entity models and the pure presentation
// logic shared by the TUI and the CLI surfaces: list filtering,
// favorite merging, and the derived display fields for a detail view.
package pokedex

import (
	"strconv"
	"strings"
)

// Entry is one row of the fetched catalog. Favorite is resolved from
// the local store when the catalog loads; it defaults to false and is
// never assumed present in the upstream payload.
type Entry struct {
	ID       int
	Name     string
	URL      string
	Favorite bool
}

// Detail is the per-Pokémon payload fetched when a detail view opens.
// Weight is in hectograms and Height in decimeters, as served by the
// upstream API; use FormatWeight/FormatHeight for display.
type Detail struct {
	ID             int
	Name           string
	Weight         float64
	Height         float64
	BaseExperience int
	Types          []string
	ArtworkURL     string
}

// IDFromURL extracts the numeric identity from a catalog resource URL
// such as "https://pokeapi.co/api/v2/pokemon/25/". Returns 0 when the
// URL carries no parsable trailing segment.
func IDFromURL(rawURL string) int {
	trimmed := strings.TrimRight(rawURL, "/")
	i := strings.LastIndexByte(trimmed, '/')
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(trimmed[i+1:])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// MergeFavorites returns entries with Favorite set for every identity
// present in favs. Input order is preserved; entries is not mutated.
func MergeFavorites(entries []Entry, favs map[int]bool) []Entry {
	if len(favs) == 0 {
		return entries
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	for i := range out {
		if favs[out[i].ID] {
			out[i].Favorite = true
		}
	}
	return out
}

// Title renders a catalog name for display ("pikachu" -> "Pikachu").
func Title(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
