package russian

// FirstNames declines first names.
//
// With Unknown gender the name's own DetectGender is consulted; if that is
// Unknown too, only the gender-neutral -а/-я declension applies and any other
// name is left unchanged.
type FirstNames struct {
	rules *FirstNameRules
}

func NewFirstNames(r *Rules) *FirstNames { return &FirstNames{rules: &r.FirstNames} }

func (*FirstNames) Kind() Kind { return FirstName }

// DetectGender looks the name up in the gender lists, then falls back to its ending.
func (f *FirstNames) DetectGender(word string) Gender {
	name := lower(word)
	switch {
	case f.rules.male.has(name):
		return Male
	case f.rules.female.has(name):
		return Female
	}
	switch last := lastRune(name); {
	case last == 'й' || isConsonant(last):
		return Male
	case last == 'а' || last == 'я':
		return Female
	}
	return Unknown
}

// IsMutable reports whether the name changes across cases.
func (f *FirstNames) IsMutable(word string, g Gender) bool {
	name := lower(word)
	forms := f.GetCases(name, g)
	return forms != fill(name)
}

func (f *FirstNames) GetCase(word string, c Case, g Gender) string {
	return f.GetCases(word, g).Get(c)
}

func (f *FirstNames) GetCases(word string, g Gender) CaseForms {
	return inflectSegments(word, func(seg string) CaseForms { return f.segmentCases(seg, g) })
}

func (f *FirstNames) segmentCases(word string, g Gender) CaseForms {
	name := lower(word)
	if g == Unknown {
		g = f.DetectGender(name)
	}
	last, prev := lastRune(name), prevRune(name)
	exception, isException := f.rules.exceptions[name]

	var forms CaseForms
	switch {
	case isException:
		forms = exception
	case g == Male && (isConsonant(last) || last == 'й'):
		stem := name
		if last == 'й' {
			stem = trimLast(name, 1)
		}
		forms = masculine(name, stem, true)
	case g == Male && last == 'ь' && isConsonant(prev):
		forms = masculine(name, trimLast(name, 1), true)
	case g == Female && last == 'ь' && isConsonant(prev):
		forms = thirdDeclension(name)
	case last == 'я' || (last == 'а' && !isVowel(prev)):
		forms = firstDeclension(name)
	default:
		forms = fill(name)
	}
	return finish(word, name, forms)
}
