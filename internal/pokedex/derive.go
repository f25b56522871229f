package pokedex

import (
	"fmt"
	"strings"
)

// Derived display fields. The API serves weight in hectograms and
// height in decimeters; both convert to SI display units by the same
// factor of 0.1.

// FormatWeight renders a weight in hectograms as kilograms, e.g.
// 60 -> "6.00 kg".
func FormatWeight(hectograms float64) string {
	return fmt.Sprintf("%.2f kg", hectograms*0.1)
}

// FormatHeight renders a height in decimeters as meters, e.g.
// 4 -> "0.40 m".
func FormatHeight(decimeters float64) string {
	return fmt.Sprintf("%.2f m", decimeters*0.1)
}

// JoinTypes renders an ordered type list as a single label,
// e.g. ["grass","poison"] -> "grass, poison". Empty list yields "".
func JoinTypes(types []string) string {
	return strings.Join(types, ", ")
}

// ShareText serializes a detail payload into the plain-text block
// handed to the share surface.
func ShareText(d Detail) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (#%d)\n", Title(d.Name), d.ID)
	fmt.Fprintf(&sb, "Weight: %s\n", FormatWeight(d.Weight))
	fmt.Fprintf(&sb, "Height: %s\n", FormatHeight(d.Height))
	if label := JoinTypes(d.Types); label != "" {
		fmt.Fprintf(&sb, "Types: %s\n", label)
	}
	return sb.String()
}
