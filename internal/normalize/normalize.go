package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Query lowercases a search term and trims surrounding space. Diacritics are
// kept so that "garcía" and "garcia" stay distinct terms, matching SQLite
// LOWER/LIKE semantics.
func Query(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Email builds an address-safe local part from a person name: lowercase,
// diacritics stripped, spaces turned into dots.
func Email(name string) string {
	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}
	folded = strings.ToLower(strings.TrimSpace(folded))
	return strings.Join(strings.Fields(folded), ".")
}
