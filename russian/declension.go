package russian

// Declension is a full name with its gender and six case forms, the unit
// written by the JSONL, CSV and MessagePack codecs.
type Declension struct {
	Name   string    `json:"name" msgpack:"name"`
	Gender Gender    `json:"gender,omitempty" msgpack:"gender,omitempty"`
	Cases  CaseForms `json:"cases" msgpack:"cases"`
}

// Declension inflects a name into a record. Unknown gender is detected and
// the detected value is recorded. It reports false for unsupported name shapes.
func (e *Engine) Declension(fullName string, g Gender) (Declension, bool) {
	name := Normalize(fullName)
	if g == Unknown {
		g = e.DetectGender(name)
	}
	forms, ok := e.NameCases(name, g)
	if !ok {
		return Declension{}, false
	}
	return Declension{Name: name, Gender: g, Cases: forms}, true
}

// NewDeclension calls Default().Declension.
func NewDeclension(fullName string, g Gender) (Declension, bool) {
	return Default().Declension(fullName, g)
}

// Clean normalizes the name of a record read from outside.
func (d *Declension) Clean() {
	d.Name = Normalize(d.Name)
}
