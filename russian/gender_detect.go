package russian

type genderProbe struct {
	kind Kind
	word string
}

// DetectGender guesses the gender of the owner of a two- or three-part name.
// Any other part count yields Unknown.
//
// For three parts the sub-name made of parts 1 and 2 is classified first and
// wins when conclusive. Otherwise the patronymic, the surname and the first
// name are asked in that order and the first conclusive answer is returned.
func (e *Engine) DetectGender(fullName string) Gender {
	parts := Tokenize(Normalize(lower(fullName)))
	if len(parts) != 2 && len(parts) != 3 {
		return Unknown
	}
	if len(parts) == 3 {
		if g := e.DetectGender(parts[1] + " " + parts[2]); g != Unknown {
			return g
		}
	}
	for _, p := range genderChain(parts) {
		if g := e.parts.get(p.kind).DetectGender(p.word); g != Unknown {
			return g
		}
	}
	return Unknown
}

// genderChain lists the probes from the most to the least reliable signal.
func genderChain(parts []string) []genderProbe {
	chain := make([]genderProbe, 0, 3)
	if len(parts) == 3 {
		chain = append(chain, genderProbe{MiddleName, parts[2]})
	}
	return append(chain, genderProbe{LastName, parts[0]}, genderProbe{FirstName, parts[1]})
}
