// Package russian inflects Russian personal names and nouns across the six
// grammatical cases and guesses the gender of a name's owner.
package russian

import (
	"strings"
	"sync"
)

// Engine dispatches name parts to their inflectors and pluralizes nouns.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	parts   inflectors
	plurals *Plurals
}

type Option func(*Engine)

// WithInflector replaces the inflector registered for p.Kind().
func WithInflector(p PartInflector) Option {
	return func(e *Engine) { e.parts[p.Kind()] = p }
}

// NewEngine builds an engine over r; a nil r selects DefaultRules.
func NewEngine(r *Rules, opts ...Option) *Engine {
	if r == nil {
		r = DefaultRules()
	}
	e := &Engine{parts: newInflectors(r), plurals: NewPlurals(r)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = sync.OnceValue(func() *Engine { return NewEngine(DefaultRules()) })

// Default returns the engine over the embedded rule tables.
func Default() *Engine { return defaultEngine() }

// nameLayouts binds token positions to part kinds by token count.
// The three-part layout is L F M: index 1 takes first-name rules and index 2
// patronymic rules, unlike the L M F reading used by DetectGender.
var nameLayouts = map[int][]Kind{
	1: {FirstName},
	2: {LastName, FirstName},
	3: {LastName, FirstName, MiddleName},
}

// prepare normalizes the name, resolves gender and picks the part layout.
func (e *Engine) prepare(fullName string, g Gender) ([]string, []Kind, Gender, bool) {
	fullName = Normalize(fullName)
	if g == Unknown {
		g = e.DetectGender(fullName)
	}
	parts := Tokenize(fullName)
	kinds, ok := nameLayouts[len(parts)]
	return parts, kinds, g, ok
}

// InflectName puts a full name in "F", "L F" or "L F M" form into case c.
// Unknown gender triggers autodetection. It reports false for names with
// zero or more than three parts, or an invalid case.
func (e *Engine) InflectName(fullName string, c Case, g Gender) (string, bool) {
	if !c.Valid() {
		return "", false
	}
	parts, kinds, g, ok := e.prepare(fullName, g)
	if !ok {
		return "", false
	}
	out := make([]string, len(parts))
	for i, k := range kinds {
		out[i] = e.parts.get(k).GetCase(parts[i], c, g)
	}
	return strings.Join(out, " "), true
}

// NameCases returns the full name in all six cases.
// It reports false for names with zero or more than three parts.
func (e *Engine) NameCases(fullName string, g Gender) (CaseForms, bool) {
	parts, kinds, g, ok := e.prepare(fullName, g)
	if !ok {
		return CaseForms{}, false
	}
	words := make([]CaseForms, len(parts))
	for i, k := range kinds {
		words[i] = e.parts.get(k).GetCases(parts[i], g)
	}
	return composeCases(words, " "), true
}

// InflectName calls Default().InflectName.
func InflectName(fullName string, c Case, g Gender) (string, bool) {
	return Default().InflectName(fullName, c, g)
}

// NameCases calls Default().NameCases.
func NameCases(fullName string, g Gender) (CaseForms, bool) {
	return Default().NameCases(fullName, g)
}

// DetectGender calls Default().DetectGender.
func DetectGender(fullName string) Gender { return Default().DetectGender(fullName) }
