package russian

import "strings"

// MiddleNames declines patronymics. The ending alone selects the pattern,
// so the gender argument is ignored; patronymics outside -ич/-на stay unchanged.
type MiddleNames struct {
	rules *MiddleNameRules
}

func NewMiddleNames(r *Rules) *MiddleNames { return &MiddleNames{rules: &r.MiddleNames} }

func (*MiddleNames) Kind() Kind { return MiddleName }

func (m *MiddleNames) DetectGender(word string) Gender {
	name := lower(word)
	switch {
	case hasSuffix(name, m.rules.MaleSuffixes...):
		return Male
	case hasSuffix(name, m.rules.FemaleSuffixes...):
		return Female
	}
	return Unknown
}

// IsMutable reports whether the patronymic changes across cases.
func (m *MiddleNames) IsMutable(word string) bool {
	return hasSuffix(lower(word), "ич", "на")
}

func (m *MiddleNames) GetCase(word string, c Case, g Gender) string {
	return m.GetCases(word, g).Get(c)
}

func (m *MiddleNames) GetCases(word string, _ Gender) CaseForms {
	name := lower(word)
	var forms CaseForms
	switch {
	case strings.HasSuffix(name, "ич"):
		forms = decline(name, name, "а", "у", "а", "ем", "е")
	case strings.HasSuffix(name, "на"):
		forms = decline(name, trimLast(name, 1), "ы", "е", "у", "ой", "е")
	default:
		forms = fill(name)
	}
	return finish(word, name, forms)
}
