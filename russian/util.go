package russian

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	vowels     = "аеёиоуыэюя"
	consonants = "бвгджзклмнпрстфхцчшщ"
)

func isVowel(r rune) bool     { return r != 0 && strings.ContainsRune(vowels, r) }
func isConsonant(r rune) bool { return r != 0 && strings.ContainsRune(consonants, r) }
func isVelar(r rune) bool     { return r != 0 && strings.ContainsRune("гкх", r) }
func isHissing(r rune) bool   { return r != 0 && strings.ContainsRune("жшчщ", r) }

// lastRune returns the final rune of s, or 0 for an empty string.
func lastRune(s string) rune {
	r, size := utf8.DecodeLastRuneInString(s)
	if size == 0 {
		return 0
	}
	return r
}

// prevRune returns the rune before the final one, or 0.
func prevRune(s string) rune { return lastRune(trimLast(s, 1)) }

// trimLast drops the last n runes.
func trimLast(s string, n int) string {
	rs := []rune(s)
	if n >= len(rs) {
		return ""
	}
	return string(rs[:len(rs)-n])
}

func hasSuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func syllables(s string) int {
	n := 0
	for _, r := range s {
		if isVowel(r) {
			n++
		}
	}
	return n
}

// fill returns the forms of an indeclinable word.
func fill(word string) CaseForms {
	var f CaseForms
	for i := range f {
		f[i] = word
	}
	return f
}

// decline attaches oblique endings to stem; the nominative is kept as given.
func decline(nominative, stem, gen, dat, acc, ins, pre string) CaseForms {
	return CaseForms{nominative, stem + gen, stem + dat, stem + acc, stem + ins, stem + pre}
}

// finish restores the letter case of original on lower-cased forms.
// Forms equal to the key are replaced by original itself.
func finish(original, key string, forms CaseForms) CaseForms {
	for i, f := range forms {
		if f == key {
			forms[i] = original
			continue
		}
		forms[i] = matchCase(original, f)
	}
	return forms
}

// matchCase copies the per-position letter case of original onto inflected.
// An all-caps original yields an all-caps result.
func matchCase(original, inflected string) string {
	orig := []rune(original)
	shout := len(orig) > 1 && isUpperWord(orig)
	out := []rune(inflected)
	for i, r := range out {
		if shout || (i < len(orig) && unicode.IsUpper(orig[i])) {
			out[i] = unicode.ToUpper(r)
		}
	}
	return string(out)
}

func isUpperWord(rs []rune) bool {
	letters := 0
	for _, r := range rs {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters > 1
}

// inflectSegments declines each hyphen-separated segment on its own.
func inflectSegments(word string, fn func(string) CaseForms) CaseForms {
	if !strings.Contains(word, "-") {
		return fn(word)
	}
	segs := strings.Split(word, "-")
	per := make([]CaseForms, len(segs))
	for i, s := range segs {
		per[i] = fn(s)
	}
	return composeCases(per, "-")
}
