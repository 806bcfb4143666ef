package distance

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/UnknownOlympus/mesafe/internal/places"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MatchMode selects how query names are matched against the table.
type MatchMode string

const (
	// MatchExact only accepts names that are byte-for-byte equal to a table key.
	MatchExact MatchMode = "exact"
	// MatchFolded falls back to a case and diacritic insensitive comparison
	// when the exact lookup fails.
	MatchFolded MatchMode = "folded"
)

// ParseMatchMode converts a configuration value to a MatchMode. Empty means MatchExact.
func ParseMatchMode(value string) (MatchMode, error) {
	switch MatchMode(value) {
	case "", MatchExact:
		return MatchExact, nil
	case MatchFolded:
		return MatchFolded, nil
	default:
		return "", fmt.Errorf("unsupported match mode: %s", value)
	}
}

// Fold reduces a place name to a comparison key: Turkish lower case, no diacritics,
// dotless i merged with i, surrounding and repeated whitespace removed.
// "İSTANBUL", "Istanbul" and " istanbul " all fold to "istanbul".
func Fold(name string) string {
	// Casers and transformers keep state, so they are built per call.
	folded := cases.Lower(language.Turkish).String(name)

	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(stripMarks, folded); err == nil {
		folded = stripped
	}

	folded = strings.ReplaceAll(folded, "ı", "i")

	return strings.Join(strings.Fields(folded), " ")
}

// foldIndex maps folded keys to table names. Keys shared by several names are left out.
func foldIndex(table *places.Table) map[string]string {
	index := make(map[string]string, table.Len())
	ambiguous := make(map[string]bool)

	for _, name := range table.Names() {
		key := Fold(name)
		if _, taken := index[key]; taken || ambiguous[key] {
			delete(index, key)
			ambiguous[key] = true
			continue
		}
		index[key] = name
	}

	return index
}
