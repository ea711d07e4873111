package russian

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize trims a full name and collapses whitespace runs between parts to a single space.
// Nothing else is corrected: letters, punctuation and letter case pass through.
func Normalize(raw string) string {
	b := strings.Builder{}
	b.Grow(len(raw))
	lastSpace := false
	for _, r := range strings.TrimSpace(raw) {
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteRune(' ')
			}
			lastSpace = true
			continue
		}
		lastSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// Tokenize splits a normalized name into its parts.
func Tokenize(name string) []string {
	if name == "" {
		return nil
	}
	return strings.Split(name, " ")
}

// lower builds the lookup key of a word: NFC composed, lower-cased with Russian rules.
// A Caser keeps state, so one is made per call.
func lower(s string) string {
	return cases.Lower(language.Russian).String(norm.NFC.String(s))
}
