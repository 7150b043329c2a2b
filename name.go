package transparence

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nameFolder strips combining marks after canonical decomposition, so that
// "Yaël" and "Yael" fold to the same bytes.
var nameFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NameKey folds a person's name into the comparison key used throughout
// identity matching: lower case, accents stripped, hyphens and runs of
// whitespace collapsed to single spaces.
//
//	NameKey("Yaël Braun-Pivet") == NameKey("yael   braun pivet")
func NameKey(s string) string {
	folded, _, err := transform.String(nameFolder, s)
	if err != nil {
		// the folder cannot fail on valid UTF-8; fall back to the raw input
		folded = s
	}
	folded = strings.ToLower(folded)
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})
	return strings.Join(fields, " ")
}
