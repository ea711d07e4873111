package russian

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	levenshtein "github.com/agnivade/levenshtein"
)

// Case is one of the six grammatical cases.
type Case uint8

const (
	Nominative Case = iota
	Genitive
	Dative
	Accusative
	Instrumental
	Prepositional

	numCases = 6
)

// Cases lists every case in declension order.
var Cases = [numCases]Case{Nominative, Genitive, Dative, Accusative, Instrumental, Prepositional}

var caseNames = [numCases]string{"nominative", "genitive", "dative", "accusative", "instrumental", "prepositional"}

var caseNamesRu = [numCases]string{"именительный", "родительный", "дательный", "винительный", "творительный", "предложный"}

// ErrUnknownCase is returned by ParseCase for identifiers outside both namespaces.
var ErrUnknownCase = errors.New("unknown case")

type caseAlias struct {
	name string
	c    Case
}

// caseAliases maps the generic and the Russian identifiers to the canonical Case.
// Kept as a slice so fuzzy matching walks it in a stable order.
var caseAliases = []caseAlias{
	{"nominative", Nominative}, {"genitive", Genitive}, {"dative", Dative},
	{"accusative", Accusative}, {"instrumental", Instrumental}, {"ablative", Instrumental},
	{"prepositional", Prepositional},
	{"именительный", Nominative}, {"родительный", Genitive}, {"дательный", Dative},
	{"винительный", Accusative}, {"творительный", Instrumental}, {"предложный", Prepositional},
	{"им", Nominative}, {"род", Genitive}, {"дат", Dative}, {"вин", Accusative},
	{"тв", Instrumental}, {"твор", Instrumental}, {"пр", Prepositional}, {"пред", Prepositional},
	{"nom", Nominative}, {"gen", Genitive}, {"dat", Dative}, {"acc", Accusative},
	{"ins", Instrumental}, {"abl", Instrumental}, {"prep", Prepositional},
}

// minFuzzyLen is the shortest identifier that may be matched with one typo.
const minFuzzyLen = 6

// ParseCase canonicalizes a case identifier from either the generic or the Russian namespace.
// Full identifiers tolerate a single typo.
func ParseCase(id string) (Case, error) {
	key := strings.TrimSuffix(lower(strings.TrimSpace(id)), " падеж")
	key = strings.TrimSuffix(key, ".")
	for _, a := range caseAliases {
		if a.name == key {
			return a.c, nil
		}
	}
	if utf8.RuneCountInString(key) >= minFuzzyLen {
		for _, a := range caseAliases {
			if utf8.RuneCountInString(a.name) < minFuzzyLen {
				continue
			}
			if levenshtein.ComputeDistance(key, a.name) <= 1 {
				return a.c, nil
			}
		}
	}
	return Nominative, fmt.Errorf("%w: %q", ErrUnknownCase, id)
}

// Valid reports whether c is one of the six cases.
func (c Case) Valid() bool { return c < numCases }

// String returns the generic identifier of the case.
func (c Case) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Case(%d)", uint8(c))
	}
	return caseNames[c]
}

// Russian returns the Russian name of the case.
func (c Case) Russian() string {
	if !c.Valid() {
		return ""
	}
	return caseNamesRu[c]
}

// CaseForms holds one form per case, indexed by Case.
type CaseForms [numCases]string

// Get returns the form for c, or "" for an invalid case.
func (f CaseForms) Get(c Case) string {
	if !c.Valid() {
		return ""
	}
	return f[c]
}

// Map returns the forms keyed by generic case name.
func (f CaseForms) Map() map[string]string {
	out := make(map[string]string, numCases)
	for _, c := range Cases {
		out[c.String()] = f[c]
	}
	return out
}

func (f *CaseForms) fromMap(m map[string]string) error {
	var seen [numCases]bool
	for k, v := range m {
		c, err := ParseCase(k)
		if err != nil {
			return err
		}
		f[c] = v
		seen[c] = true
	}
	for _, c := range Cases {
		if !seen[c] {
			return fmt.Errorf("missing %s form", c)
		}
	}
	return nil
}

func (f CaseForms) MarshalJSON() ([]byte, error) { return json.Marshal(f.Map()) }

func (f *CaseForms) UnmarshalJSON(data []byte) error {
	m := map[string]string{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	return f.fromMap(m)
}

// composeCases joins per-word forms into per-case phrases.
func composeCases(words []CaseForms, sep string) CaseForms {
	var out CaseForms
	parts := make([]string, len(words))
	for _, c := range Cases {
		for i, w := range words {
			parts[i] = w[c]
		}
		out[c] = strings.Join(parts, sep)
	}
	return out
}
