package russian

import "strings"

type nounClass uint8

const (
	classImmutable nounClass = iota
	classFirst               // -а/-я: книга, неделя, папа
	classMasculine           // consonant, -й, masculine -ь: стол, музей, день
	classNeuter              // -о/-е/-ё: окно, поле, здание
	classThird               // feminine -ь: тетрадь, ночь
)

// Nouns declines common nouns in the singular. Animacy only affects the
// accusative of masculine nouns.
type Nouns struct {
	rules *NounRules
}

func NewNouns(r *Rules) *Nouns { return &Nouns{rules: &r.Nouns} }

func (n *Nouns) GetCase(word string, c Case, animate bool) string {
	return n.GetCases(word, animate).Get(c)
}

func (n *Nouns) GetCases(word string, animate bool) CaseForms {
	w := lower(word)
	if forms, ok := n.rules.exceptions[w]; ok {
		return finish(word, w, forms)
	}
	class := n.class(w)
	stem := n.stem(w, class)

	var forms CaseForms
	switch class {
	case classFirst:
		forms = firstDeclension(w)
	case classMasculine:
		forms = masculine(w, stem, animate)
	case classNeuter:
		forms = neuter(w, stem)
	case classThird:
		forms = thirdDeclension(w)
	default:
		forms = fill(w)
	}
	return finish(word, w, forms)
}

// IsMutable reports whether the noun changes across cases.
func (n *Nouns) IsMutable(word string) bool {
	w := lower(word)
	_, ok := n.rules.exceptions[w]
	return ok || n.class(w) != classImmutable
}

func (n *Nouns) class(w string) nounClass {
	if n.rules.immutable.has(w) {
		return classImmutable
	}
	switch last := lastRune(w); {
	case last == 'а' || last == 'я':
		return classFirst
	case last == 'о' || last == 'е' || last == 'ё':
		return classNeuter
	case last == 'ь':
		if n.rules.masculineSoft.has(w) || hasSuffix(w, "тель", "арь") {
			return classMasculine
		}
		return classThird
	case last == 'й' || isConsonant(last):
		return classMasculine
	}
	return classImmutable
}

// stem returns the oblique stem: the word without its ending and, for
// masculine nouns, without a fleeting vowel.
func (n *Nouns) stem(w string, class nounClass) string {
	if s, ok := n.rules.fleeting[w]; ok {
		return s
	}
	switch class {
	case classMasculine:
		if last := lastRune(w); last == 'й' || last == 'ь' {
			return trimLast(w, 1)
		}
		if strings.HasSuffix(w, "ец") {
			return fleetingEts(w)
		}
		return w
	case classFirst, classNeuter, classThird:
		return trimLast(w, 1)
	}
	return w
}

// fleetingEts drops the vowel of the -ец suffix: огурец -> огурц, боец -> бойц.
// Clusters that would become unpronounceable keep it: кузнец -> кузнец.
func fleetingEts(w string) string {
	rs := []rune(w)
	n := len(rs)
	if n < 4 {
		return w
	}
	before, beforeThat := rs[n-3], rs[n-4]
	switch {
	case isVowel(before):
		return string(rs[:n-2]) + "йц"
	case isConsonant(before) && isVowel(beforeThat):
		return string(rs[:n-2]) + "ц"
	}
	return w
}
