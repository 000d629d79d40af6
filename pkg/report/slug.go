package report

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes accented characters and strips the combining marks,
// so "Pressão" folds to "Pressao".
var foldMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug derives a filesystem-safe identifier from a product display name:
// diacritics folded to ASCII, remaining non-ASCII dropped, anything other
// than letters, digits, "-" and "_" replaced by "_", runs collapsed.
// Never empty: a name with no usable characters yields "produto".
func Slug(name string) string {
	folded, _, err := transform.String(foldMarks, strings.TrimSpace(name))
	if err != nil {
		folded = strings.TrimSpace(name)
	}

	var b strings.Builder
	for _, r := range folded {
		switch {
		case r > unicode.MaxASCII:
			// dropped
		case r == '-' || r == '_' ||
			(r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	var parts []string
	for _, p := range strings.Split(b.String(), "_") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	slug := strings.Join(parts, "_")
	if slug == "" {
		return "produto"
	}
	return slug
}
