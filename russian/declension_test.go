package russian

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleDeclensions(t *testing.T) []Declension {
	t.Helper()
	var out []Declension
	for _, n := range []string{"Петров  Игорь Сергеевич", "Иванова Мария", "Анна"} {
		d, ok := NewDeclension(n, Unknown)
		if !ok {
			t.Fatalf("NewDeclension(%q) failed", n)
		}
		out = append(out, d)
	}
	return out
}

func TestNewDeclension(t *testing.T) {
	d, ok := NewDeclension("  Петров  Игорь Сергеевич ", Unknown)
	if !ok {
		t.Fatalf("expected a declension")
	}
	if d.Name != "Петров Игорь Сергеевич" || d.Gender != Male {
		t.Fatalf("unexpected record: %#v", d)
	}
	if d.Cases[Instrumental] != "Петровым Игорем Сергеевичем" {
		t.Fatalf("instrumental: %q", d.Cases[Instrumental])
	}
	if _, ok := NewDeclension("a b c d", Male); ok {
		t.Fatalf("four parts must be rejected")
	}
}

func TestDeclensionCodecs(t *testing.T) {
	want := sampleDeclensions(t)
	codecs := []struct {
		name  string
		write func(*bytes.Buffer, []Declension) error
		read  func(*bytes.Buffer, func(Declension) error) error
	}{
		{"jsonl",
			func(b *bytes.Buffer, ds []Declension) error { return WriteDeclensionsJSONL(b, ds) },
			func(b *bytes.Buffer, fn func(Declension) error) error { return ReadDeclensionsJSONL(b, fn) }},
		{"csv",
			func(b *bytes.Buffer, ds []Declension) error { return WriteDeclensionsCSV(b, ds) },
			func(b *bytes.Buffer, fn func(Declension) error) error { return ReadDeclensionsCSV(b, fn) }},
		{"msgpack",
			func(b *bytes.Buffer, ds []Declension) error { return WriteDeclensionsMsgpack(b, ds) },
			func(b *bytes.Buffer, fn func(Declension) error) error { return ReadDeclensionsMsgpack(b, fn) }},
	}
	for _, c := range codecs {
		buf := bytes.Buffer{}
		if err := c.write(&buf, want); err != nil {
			t.Fatalf("%s write: %v", c.name, err)
		}
		var got []Declension
		if err := c.read(&buf, func(d Declension) error { got = append(got, d); return nil }); err != nil {
			t.Fatalf("%s read: %v", c.name, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("%s round-trip mismatch (-want +got):\n%s", c.name, diff)
		}
	}
}

func TestReadDeclensionsCSVMissingColumn(t *testing.T) {
	err := ReadDeclensionsCSV(strings.NewReader("name,gender,nominative\nАнна,female,Анна\n"), func(Declension) error { return nil })
	if err == nil || !strings.Contains(err.Error(), `missing column "genitive"`) {
		t.Fatalf("expected missing column error, got %v", err)
	}
}
