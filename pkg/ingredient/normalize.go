package ingredient

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	disallowedChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	repeatedSpaces  = regexp.MustCompile(`\s+`)

	nameVariants = map[string]string{
		"skim milk": "skimmed milk",
	}
)

// CanonicalName turns a provider ingredient name into the deduplication key:
// lowercase, accents stripped, only [a-z0-9 -] kept, spaces collapsed and
// known variants mapped to one spelling.
func CanonicalName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(t, s); err == nil {
		s = stripped
	}
	s = disallowedChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(repeatedSpaces.ReplaceAllString(s, " "))
	if v, ok := nameVariants[s]; ok {
		return v
	}
	return s
}
