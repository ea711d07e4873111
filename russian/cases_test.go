package russian

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCase(t *testing.T) {
	tests := []struct {
		in   string
		want Case
	}{
		{"nominative", Nominative},
		{"Genitive", Genitive},
		{"ablative", Instrumental},
		{"prep", Prepositional},
		{"именительный", Nominative},
		{"Родительный падеж", Genitive},
		{"дат.", Dative},
		{"вин", Accusative},
		{"твор", Instrumental},
		{"пред", Prepositional},
		// one typo in a full identifier
		{"genitiv", Genitive},
		{"prepositonal", Prepositional},
		{"винительнй", Accusative},
	}
	for _, tt := range tests {
		got, err := ParseCase(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseCaseUnknown(t *testing.T) {
	for _, in := range []string{"", "vocative", "xx", "gen2"} {
		_, err := ParseCase(in)
		if !errors.Is(err, ErrUnknownCase) {
			t.Fatalf("ParseCase(%q): expected ErrUnknownCase, got %v", in, err)
		}
	}
}

func TestCaseNames(t *testing.T) {
	assert.Equal(t, "instrumental", Instrumental.String())
	assert.Equal(t, "предложный", Prepositional.Russian())
	assert.False(t, Case(6).Valid())
	assert.Equal(t, "", Case(6).Russian())
	for _, c := range Cases {
		back, err := ParseCase(c.Russian())
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
}

func TestCaseFormsJSON(t *testing.T) {
	f := CaseForms{"стол", "стола", "столу", "стол", "столом", "столе"}
	raw, err := json.Marshal(f)
	require.NoError(t, err)

	var back CaseForms
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, f, back)
	assert.Equal(t, "", back.Get(Case(42)))

	err = json.Unmarshal([]byte(`{"nominative":"стол"}`), &back)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing genitive form")
}
