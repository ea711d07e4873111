package russian

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed rules/*.yaml
var embeddedRules embed.FS

// Rules holds the lookup tables consulted by the inflectors.
// A Rules value is read-only once loaded and may be shared between goroutines.
type Rules struct {
	FirstNames  FirstNameRules  `yaml:"first_names"`
	LastNames   LastNameRules   `yaml:"last_names"`
	MiddleNames MiddleNameRules `yaml:"middle_names"`
	Nouns       NounRules       `yaml:"nouns"`
}

type FirstNameRules struct {
	Male       []string            `yaml:"male"`
	Female     []string            `yaml:"female"`
	Exceptions map[string][]string `yaml:"exceptions"`

	male, female wordSet
	exceptions   map[string]CaseForms
}

type LastNameRules struct {
	Immutable         []string `yaml:"immutable"`
	ImmutableSuffixes []string `yaml:"immutable_suffixes"`

	immutable wordSet
}

type MiddleNameRules struct {
	MaleSuffixes   []string `yaml:"male_suffixes"`
	FemaleSuffixes []string `yaml:"female_suffixes"`
}

type NounRules struct {
	Immutable        []string            `yaml:"immutable"`
	MasculineSoft    []string            `yaml:"masculine_soft"`
	Fleeting         map[string]string   `yaml:"fleeting"`
	Exceptions       map[string][]string `yaml:"exceptions"`
	PluralExceptions map[string][]string `yaml:"plural_exceptions"`
	Counted          map[string]string   `yaml:"counted"`

	immutable, masculineSoft wordSet
	fleeting, counted        map[string]string
	exceptions, plurals      map[string]CaseForms
}

type wordSet map[string]struct{}

func newWordSet(words []string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[lower(w)] = struct{}{}
	}
	return s
}

func (s wordSet) has(w string) bool { _, ok := s[w]; return ok }

var defaultRules = sync.OnceValue(func() *Rules {
	r, err := loadRules(embeddedRules, "rules")
	if err != nil {
		panic(fmt.Errorf("failed to load embedded rule tables: %w", err))
	}
	return r
})

// DefaultRules returns the rule tables shipped with the package.
func DefaultRules() *Rules { return defaultRules() }

// ParseRules reads a single YAML rule document.
func ParseRules(data []byte) (*Rules, error) {
	r := &Rules{}
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if err := r.index(); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadRules reads rule tables from a YAML file or from every YAML file in a directory.
func LoadRules(path string) (*Rules, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	if st.IsDir() {
		return loadRules(os.DirFS(path), ".")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return ParseRules(raw)
}

func loadRules(fsys fs.FS, root string) (*Rules, error) {
	r := &Rules{}
	walk := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".yml") && !strings.HasSuffix(d.Name(), ".yaml") {
			return nil
		}
		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		// files carry disjoint top-level sections and are merged into r
		if err := yaml.Unmarshal(raw, r); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
	if err := fs.WalkDir(fsys, root, walk); err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	if err := r.index(); err != nil {
		return nil, err
	}
	return r, nil
}

// index builds the lookup structures and validates the tables.
func (r *Rules) index() error {
	var err error
	fn := &r.FirstNames
	fn.male, fn.female = newWordSet(fn.Male), newWordSet(fn.Female)
	if fn.exceptions, err = indexForms("first_names.exceptions", fn.Exceptions); err != nil {
		return err
	}

	r.LastNames.immutable = newWordSet(r.LastNames.Immutable)

	n := &r.Nouns
	n.immutable, n.masculineSoft = newWordSet(n.Immutable), newWordSet(n.MasculineSoft)
	n.fleeting, n.counted = lowerKeys(n.Fleeting), lowerKeys(n.Counted)
	if n.exceptions, err = indexForms("nouns.exceptions", n.Exceptions); err != nil {
		return err
	}
	if n.plurals, err = indexForms("nouns.plural_exceptions", n.PluralExceptions); err != nil {
		return err
	}
	return nil
}

func indexForms(section string, table map[string][]string) (map[string]CaseForms, error) {
	out := make(map[string]CaseForms, len(table))
	for word, forms := range table {
		if len(forms) != numCases {
			return nil, fmt.Errorf("%s: %q has %d forms, want %d", section, word, len(forms), numCases)
		}
		var f CaseForms
		for i, v := range forms {
			f[i] = lower(v)
		}
		out[lower(word)] = f
	}
	return out, nil
}

func lowerKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[lower(k)] = lower(v)
	}
	return out
}
