package russian

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":                      "",
		"   ":                   "",
		"Иван":                  "Иван",
		"  Иванов   Иван  ":     "Иванов Иван",
		"Иванов\tИван\nИванович": "Иванов Иван Иванович",
		"иВАНОВ  иван":          "иВАНОВ иван",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTokenize(t *testing.T) {
	if parts := Tokenize(""); parts != nil {
		t.Fatalf("expected no parts for empty name, got %q", parts)
	}
	parts := Tokenize(Normalize(" Петров  Игорь Сергеевич "))
	if len(parts) != 3 || parts[0] != "Петров" || parts[2] != "Сергеевич" {
		t.Fatalf("unexpected parts: %q", parts)
	}
}

func TestLowerComposesYo(t *testing.T) {
	if got := lower("Фе\u0308дор"); got != "фёдор" {
		t.Fatalf("lower: got %q", got)
	}
}
