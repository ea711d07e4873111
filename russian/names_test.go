package russian

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestNameCasesGolden(t *testing.T) {
	tests := []struct {
		name string
		g    Gender
		want CaseForms
	}{
		{"Иван", Male, CaseForms{"Иван", "Ивана", "Ивану", "Ивана", "Иваном", "Иване"}},
		{"Анна", Unknown, CaseForms{"Анна", "Анны", "Анне", "Анну", "Анной", "Анне"}},
		{"Иванов Иван", Male, CaseForms{
			"Иванов Иван", "Иванова Ивана", "Иванову Ивану", "Иванова Ивана", "Ивановым Иваном", "Иванове Иване",
		}},
		{"Иванова Мария", Female, CaseForms{
			"Иванова Мария", "Ивановой Марии", "Ивановой Марии", "Иванову Марию", "Ивановой Марией", "Ивановой Марии",
		}},
		{"Петров Игорь Сергеевич", Unknown, CaseForms{
			"Петров Игорь Сергеевич", "Петрова Игоря Сергеевича", "Петрову Игорю Сергеевичу",
			"Петрова Игоря Сергеевича", "Петровым Игорем Сергеевичем", "Петрове Игоре Сергеевиче",
		}},
		{"Достоевский Фёдор Михайлович", Male, CaseForms{
			"Достоевский Фёдор Михайлович", "Достоевского Фёдора Михайловича", "Достоевскому Фёдору Михайловичу",
			"Достоевского Фёдора Михайловича", "Достоевским Фёдором Михайловичем", "Достоевском Фёдоре Михайловиче",
		}},
		{"Толстая Софья Андреевна", Unknown, CaseForms{
			"Толстая Софья Андреевна", "Толстой Софьи Андреевны", "Толстой Софье Андреевне",
			"Толстую Софью Андреевну", "Толстой Софьей Андреевной", "Толстой Софье Андреевне",
		}},
		{"Шевченко Тарас", Unknown, CaseForms{
			"Шевченко Тарас", "Шевченко Тараса", "Шевченко Тарасу", "Шевченко Тараса", "Шевченко Тарасом", "Шевченко Тарасе",
		}},
		{"Шмидт Анна", Female, CaseForms{
			"Шмидт Анна", "Шмидт Анны", "Шмидт Анне", "Шмидт Анну", "Шмидт Анной", "Шмидт Анне",
		}},
		{"Гоголь Николай", Male, CaseForms{
			"Гоголь Николай", "Гоголя Николая", "Гоголю Николаю", "Гоголя Николая", "Гоголем Николаем", "Гоголе Николае",
		}},
	}
	for _, tt := range tests {
		got, ok := NameCases(tt.name, tt.g)
		if !ok {
			t.Fatalf("NameCases(%q) not supported", tt.name)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", tt.name, diff)
		}
		for _, c := range Cases {
			one, ok := InflectName(tt.name, c, tt.g)
			require.True(t, ok)
			assert.Equal(t, got[c], one, "%s %s", tt.name, c)
		}
	}
}

func TestInflectNameNormalizesInput(t *testing.T) {
	got, ok := InflectName("  Иванов \t Иван ", Dative, Male)
	require.True(t, ok)
	assert.Equal(t, "Иванову Ивану", got)

	got, ok = InflectName("иванов иван", Nominative, Unknown)
	require.True(t, ok)
	assert.Equal(t, "иванов иван", got)
}

func TestWhitespaceRunsEquivalent(t *testing.T) {
	spaced, _ := NameCases("Петров   Игорь    Сергеевич", Unknown)
	single, _ := NameCases("Петров Игорь Сергеевич", Unknown)
	if spaced != single {
		t.Fatalf("whitespace runs changed the result:\n%v\n%v", spaced, single)
	}
}

func TestInflectNameUnsupported(t *testing.T) {
	for _, name := range []string{"", "   ", "Иванов Иван Иванович Младший"} {
		if _, ok := InflectName(name, Genitive, Male); ok {
			t.Fatalf("expected %q to be unsupported", name)
		}
		if _, ok := NameCases(name, Male); ok {
			t.Fatalf("expected %q to be unsupported", name)
		}
	}
	if _, ok := InflectName("Иван", Case(7), Male); ok {
		t.Fatalf("expected invalid case to be rejected")
	}
}

func TestDetectGender(t *testing.T) {
	cases := map[string]Gender{
		"Иванов Иван":             Male,
		"иванов иван":             Male,
		"ИВАНОВА МАРИЯ":           Female,
		"Петров Игорь Сергеевич":  Male,
		"Толстая Софья Андреевна": Female,
		"Шевченко Тарас":          Male,
		"Иван":                    Unknown,
		"Иванов Иван Иванович Ш":  Unknown,
		"":                        Unknown,
	}
	for name, want := range cases {
		if got := DetectGender(name); got != want {
			t.Fatalf("DetectGender(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestDetectGenderSubNameWins(t *testing.T) {
	// the surname-shaped middle token is read first and outranks the patronymic
	assert.Equal(t, Female, DetectGender("Смирнов Петрова Иванович"))
}

type stubInflector struct {
	kind   Kind
	gender Gender
}

func (s stubInflector) Kind() Kind { return s.kind }
func (s stubInflector) GetCase(w string, _ Case, _ Gender) string { return w }
func (s stubInflector) GetCases(w string, _ Gender) CaseForms { return fill(w) }
func (s stubInflector) DetectGender(string) Gender { return s.gender }

func TestDetectGenderOrder(t *testing.T) {
	e := NewEngine(nil,
		WithInflector(stubInflector{LastName, Female}),
		WithInflector(stubInflector{FirstName, Unknown}),
		WithInflector(stubInflector{MiddleName, Male}),
	)
	// sub-name "b c" asks the surname rules about b first
	assert.Equal(t, Female, e.DetectGender("a b c"))

	e = NewEngine(nil,
		WithInflector(stubInflector{LastName, Unknown}),
		WithInflector(stubInflector{FirstName, Unknown}),
		WithInflector(stubInflector{MiddleName, Male}),
	)
	assert.Equal(t, Male, e.DetectGender("a b c"))
	// two parts never consult the patronymic rules
	assert.Equal(t, Unknown, e.DetectGender("a b"))

	e = NewEngine(nil,
		WithInflector(stubInflector{LastName, Unknown}),
		WithInflector(stubInflector{FirstName, Female}),
		WithInflector(stubInflector{MiddleName, Unknown}),
	)
	assert.Equal(t, Female, e.DetectGender("a b"))
}

func TestEngineConcurrentUse(t *testing.T) {
	defer goleak.VerifyNone(t)

	names := []string{"Иванов Иван", "Толстая Софья Андреевна", "Гоголь Николай", "Анна"}
	want := make([]CaseForms, len(names))
	for i, n := range names {
		want[i], _ = NameCases(n, Unknown)
	}
	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i, n := range names {
				got, _ := NameCases(n, Unknown)
				if got != want[i] {
					t.Errorf("concurrent NameCases(%q) = %v, want %v", n, got, want[i])
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
