package russian

// Kind is the positional role of a name part.
type Kind uint8

const (
	FirstName Kind = iota
	LastName
	MiddleName
)

func (k Kind) String() string {
	switch k {
	case FirstName:
		return "first_name"
	case LastName:
		return "last_name"
	case MiddleName:
		return "middle_name"
	}
	return "unknown"
}

// PartInflector declines one kind of name part.
// Implementations must be stateless and safe for concurrent use.
type PartInflector interface {
	Kind() Kind
	GetCase(word string, c Case, g Gender) string
	GetCases(word string, g Gender) CaseForms // all six forms
	DetectGender(word string) Gender           // Unknown when no rule matches
}

// inflectors holds one PartInflector per Kind.
type inflectors map[Kind]PartInflector

func newInflectors(r *Rules) inflectors {
	in := inflectors{}
	for _, p := range []PartInflector{NewFirstNames(r), NewLastNames(r), NewMiddleNames(r)} {
		in[p.Kind()] = p
	}
	return in
}

func (in inflectors) get(k Kind) PartInflector { return in[k] }
