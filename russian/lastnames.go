package russian

import "strings"

// LastNames declines surnames: possessive (-ов, -ин), adjectival (-ский, -ая),
// noun-like (Гоголь, Глинка) and indeclinable (Шевченко, Черных) ones.
//
// With Unknown gender the surname's own DetectGender is consulted; if that is
// Unknown too, only the gender-neutral -а/-я declension applies.
type LastNames struct {
	rules *LastNameRules
}

func NewLastNames(r *Rules) *LastNames { return &LastNames{rules: &r.LastNames} }

func (*LastNames) Kind() Kind { return LastName }

func (l *LastNames) DetectGender(word string) Gender {
	name := lower(word)
	switch {
	case hasSuffix(name, "ова", "ева", "ёва", "ина", "ына", "ая", "яя"):
		return Female
	case hasSuffix(name, "ов", "ев", "ёв", "ин", "ын", "ий", "ый", "ой"):
		return Male
	}
	return Unknown
}

// IsMutable reports whether the surname changes across cases.
func (l *LastNames) IsMutable(word string, g Gender) bool {
	name := lower(word)
	return l.GetCases(name, g) != fill(name)
}

func (l *LastNames) GetCase(word string, c Case, g Gender) string {
	return l.GetCases(word, g).Get(c)
}

func (l *LastNames) GetCases(word string, g Gender) CaseForms {
	return inflectSegments(word, func(seg string) CaseForms { return l.segmentCases(seg, g) })
}

func (l *LastNames) immutable(name string) bool {
	if l.rules.immutable.has(name) || hasSuffix(name, l.rules.ImmutableSuffixes...) {
		return true
	}
	switch last := lastRune(name); last {
	case 'о', 'е', 'ё', 'и', 'у', 'ю', 'ы', 'э', 0:
		return true
	case 'а':
		return isVowel(prevRune(name))
	}
	return false
}

func (l *LastNames) segmentCases(word string, g Gender) CaseForms {
	name := lower(word)
	if g == Unknown {
		g = l.DetectGender(name)
	}
	last, prev := lastRune(name), prevRune(name)

	var forms CaseForms
	switch {
	case l.immutable(name):
		forms = fill(name)
	case g == Male && hasSuffix(name, "ов", "ев", "ёв", "ин", "ын"):
		forms = decline(name, name, "а", "у", "а", "ым", "е")
	case g == Female && hasSuffix(name, "ова", "ева", "ёва", "ина", "ына"):
		forms = decline(name, trimLast(name, 1), "ой", "ой", "у", "ой", "ой")
	case g == Male && hasSuffix(name, "ий", "ый", "ой"):
		forms = masculineAdjective(name)
	case g == Female && hasSuffix(name, "ая"):
		stem := trimLast(name, 2)
		end := "ой"
		if isHissing(lastRune(stem)) {
			end = "ей"
		}
		forms = decline(name, stem, end, end, "ую", end, end)
	case g == Female && hasSuffix(name, "яя"):
		forms = decline(name, trimLast(name, 2), "ей", "ей", "юю", "ей", "ей")
	case last == 'а' || last == 'я':
		forms = firstDeclension(name)
	case g == Male && (isConsonant(last) || last == 'й'):
		stem := name
		if last == 'й' {
			stem = trimLast(name, 1)
		}
		forms = masculine(name, stem, true)
	case g == Male && last == 'ь' && isConsonant(prev):
		forms = masculine(name, trimLast(name, 1), true)
	default:
		forms = fill(name)
	}
	return finish(word, name, forms)
}

// masculineAdjective declines -ий/-ый/-ой surnames (Достоевский, Белый, Толстой).
func masculineAdjective(name string) CaseForms {
	stem := trimLast(name, 2)
	before := lastRune(stem)
	soft := strings.HasSuffix(name, "ий")
	switch {
	case isVelar(before) || (isHissing(before) && !soft):
		return decline(name, stem, "ого", "ому", "ого", "им", "ом")
	case soft:
		return decline(name, stem, "его", "ему", "его", "им", "ем")
	}
	return decline(name, stem, "ого", "ому", "ого", "ым", "ом")
}
