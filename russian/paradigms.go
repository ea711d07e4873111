package russian

import "strings"

// firstDeclension declines words in -а/-я (Анна, Никита, Мария, книга, неделя).
func firstDeclension(word string) CaseForms {
	stem := trimLast(word, 1)
	prev := lastRune(stem)
	switch {
	case strings.HasSuffix(word, "ия"):
		return decline(word, stem, "и", "и", "ю", "ей", "и")
	case lastRune(word) == 'я':
		return decline(word, stem, "и", "е", "ю", "ей", "е")
	}
	gen := "ы"
	if isVelar(prev) || isHissing(prev) {
		gen = "и"
	}
	ins := "ой"
	if isHissing(prev) || prev == 'ц' {
		ins = "ей"
	}
	return decline(word, stem, gen, "е", "у", ins, "е")
}

// thirdDeclension declines feminine words in -ь (Любовь, тетрадь, ночь).
func thirdDeclension(word string) CaseForms {
	stem := trimLast(word, 1)
	return decline(word, stem, "и", "и", "ь", "ью", "и")
}

// masculine declines second-declension masculine words. stem is the oblique
// stem: without the final -й/-ь and without a fleeting vowel.
func masculine(nominative, stem string, animate bool) CaseForms {
	var forms CaseForms
	switch last := lastRune(nominative); {
	case strings.HasSuffix(nominative, "ий"):
		forms = decline(nominative, stem, "я", "ю", "я", "ем", "и")
	case last == 'й' || last == 'ь':
		forms = decline(nominative, stem, "я", "ю", "я", "ем", "е")
	default:
		forms = decline(nominative, stem, "а", "у", "а", hardEnding(nominative, stem, "ом", "ем"), "е")
	}
	if !animate {
		forms[Accusative] = nominative
	}
	return forms
}

// neuter declines second-declension neuter words in -о/-е/-ё.
func neuter(nominative, stem string) CaseForms {
	prev := lastRune(stem)
	switch {
	case strings.HasSuffix(nominative, "ие"):
		return decline(nominative, stem, "я", "ю", "е", "ем", "и")
	case lastRune(nominative) == 'о':
		return CaseForms{nominative, stem + "а", stem + "у", nominative, stem + "ом", stem + "е"}
	case isHissing(prev) || prev == 'ц':
		return CaseForms{nominative, stem + "а", stem + "у", nominative, stem + "ем", stem + "е"}
	}
	return CaseForms{nominative, stem + "я", stem + "ю", nominative, stem + "ем", stem + "е"}
}

// hardEnding picks between a stressed (-ом, -ов) and an unstressed (-ем, -ев) ending
// after a hissing consonant or ц. Monosyllables and stems that lost a fleeting vowel
// take the stressed one.
func hardEnding(nominative, stem, stressed, unstressed string) string {
	last := lastRune(stem)
	if !isHissing(last) && last != 'ц' {
		return stressed
	}
	if syllables(nominative) == 1 || stem != nominative {
		return stressed
	}
	return unstressed
}
