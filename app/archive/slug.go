package archive

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	separators   = regexp.MustCompile(`[-\s]+`)
)

// slugify folds diacritics and reduces a title to a filesystem-safe slug
// of at most maxLen runes.
func slugify(title string, maxLen int) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, title)
	if err != nil {
		folded = title
	}

	s := invalidChars.ReplaceAllString(strings.TrimSpace(folded), "")
	s = separators.ReplaceAllString(s, "-")

	if r := []rune(s); len(r) > maxLen {
		s = string(r[:maxLen])
	}

	return strings.Trim(s, "-")
}
