package russian

import "strings"

// NumeralForm is the agreement class a count imposes on the counted noun.
type NumeralForm uint8

const (
	NumeralOne  NumeralForm = iota // 1, 21, 101: singular nominative
	NumeralFew                     // 2-4, 22-24: singular genitive
	NumeralMany                    // 0, 5-20, 25-30: plural genitive
)

// NumeralFormOf classifies a count. Negative counts agree like their absolute value.
func NumeralFormOf(count int) NumeralForm {
	if count < 0 {
		count = -count
	}
	if count > 100 {
		count %= 100
	}
	ending := count % 10
	switch {
	case count == 1 || (count > 20 && ending == 1):
		return NumeralOne
	case (count >= 2 && count <= 4) || (count > 20 && ending >= 2 && ending <= 4):
		return NumeralFew
	}
	return NumeralMany
}

// Plurals declines nouns in the plural and picks the form agreeing with a count.
type Plurals struct {
	rules *NounRules
	nouns *Nouns
}

func NewPlurals(r *Rules) *Plurals { return &Plurals{rules: &r.Nouns, nouns: NewNouns(r)} }

// Pluralize returns the form of word agreeing with count, without the number.
func (p *Plurals) Pluralize(count int, word string, animate bool) string {
	switch NumeralFormOf(count) {
	case NumeralOne:
		return p.nouns.GetCase(word, Nominative, animate)
	case NumeralFew:
		return p.nouns.GetCase(word, Genitive, animate)
	}
	if counted, ok := p.rules.counted[lower(word)]; ok {
		return matchCase(word, counted)
	}
	return p.GetCase(word, Genitive, animate)
}

func (p *Plurals) GetCase(word string, c Case, animate bool) string {
	return p.GetCases(word, animate).Get(c)
}

// GetCases returns the plural forms. Animate nouns take the genitive as accusative.
func (p *Plurals) GetCases(word string, animate bool) CaseForms {
	w := lower(word)
	if forms, ok := p.rules.plurals[w]; ok {
		return finish(word, w, forms)
	}
	class := p.nouns.class(w)
	if class == classImmutable {
		return finish(word, w, fill(w))
	}
	stem := p.nouns.stem(w, class)
	nom := pluralNominative(w, stem, class)
	gen := pluralGenitive(w, stem, class)
	a := "а"
	if softPlural(w, stem, class) {
		a = "я"
	}
	forms := CaseForms{nom, gen, stem + a + "м", nom, stem + a + "ми", stem + a + "х"}
	if animate {
		forms[Accusative] = gen
	}
	return finish(word, w, forms)
}

func pluralNominative(w, stem string, class nounClass) string {
	last, tail := lastRune(w), lastRune(stem)
	hardI := isVelar(tail) || isHissing(tail)
	switch class {
	case classFirst:
		if last == 'а' && !hardI {
			return stem + "ы"
		}
		return stem + "и"
	case classMasculine:
		if last == 'й' || last == 'ь' || hardI {
			return stem + "и"
		}
		return stem + "ы"
	case classNeuter:
		if last == 'о' || isHissing(tail) || tail == 'ц' {
			return stem + "а"
		}
		return stem + "я"
	}
	return stem + "и"
}

func pluralGenitive(w, stem string, class nounClass) string {
	last, tail := lastRune(w), lastRune(stem)
	switch class {
	case classFirst:
		switch {
		case strings.HasSuffix(w, "ия"):
			return stem + "й"
		case strings.HasSuffix(w, "ья"):
			return trimLast(w, 2) + "ей"
		case last == 'я' && isVowel(tail):
			return stem + "й"
		case last == 'я' && tail == 'н' && isConsonant(prevRune(stem)):
			return trimLast(stem, 1) + "ен"
		case last == 'я':
			return stem + "ь"
		}
		return insertVowel(stem, false)
	case classMasculine:
		switch {
		case last == 'й':
			return stem + "ев"
		case last == 'ь' || isHissing(tail):
			return stem + "ей"
		}
		return stem + hardEnding(w, stem, "ов", "ев")
	case classNeuter:
		switch {
		case strings.HasSuffix(w, "ие"):
			return stem + "й"
		case strings.HasSuffix(w, "ье"):
			return trimLast(w, 2) + "ий"
		case last == 'о':
			return insertVowel(stem, true)
		case isHissing(tail) || tail == 'ц':
			return stem
		case tail == 'ь':
			return trimLast(stem, 1) + "ей"
		}
		return stem + "ей"
	}
	return stem + "ей"
}

func softPlural(w, stem string, class nounClass) bool {
	last, tail := lastRune(w), lastRune(stem)
	switch class {
	case classFirst:
		return last == 'я'
	case classMasculine:
		return last == 'й' || last == 'ь'
	case classNeuter:
		return last != 'о' && !isHissing(tail) && tail != 'ц'
	}
	return !isHissing(tail)
}

// insertVowel restores the vowel a bare genitive plural stem needs:
// ручк -> ручек, сказк -> сказок, письм -> писем, окн -> окон.
func insertVowel(stem string, neuterWord bool) string {
	rs := []rune(stem)
	n := len(rs)
	if n < 2 || !isConsonant(rs[n-1]) {
		return stem
	}
	last, prev := rs[n-1], rs[n-2]
	switch {
	case prev == 'ь' || prev == 'й':
		return string(rs[:n-2]) + "е" + string(last)
	case !isConsonant(prev):
		return stem
	case last == 'к' || (neuterWord && (last == 'н' || last == 'ц')):
		v := "о"
		if isHissing(prev) {
			v = "е"
		}
		return string(rs[:n-1]) + v + string(last)
	}
	return stem
}
