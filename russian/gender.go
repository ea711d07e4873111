package russian

import (
	"errors"
	"fmt"
	"strings"
)

// Gender of a name owner. Unknown is a valid result of detection.
type Gender string

const (
	Unknown Gender = ""
	Male    Gender = "male"
	Female  Gender = "female"
)

// ErrUnknownGender is returned by ParseGender for unrecognized codes.
var ErrUnknownGender = errors.New("unknown gender")

// ParseGender accepts English and Russian spellings; empty, "auto" and "unknown" map to Unknown.
func ParseGender(text string) (Gender, error) {
	code := lower(strings.TrimSpace(text))
	switch code {
	case "", "auto", "unknown", "?":
		return Unknown, nil
	case "m", "male", "man", "masculine", "м", "муж", "мужской":
		return Male, nil
	case "f", "female", "woman", "feminine", "ж", "жен", "женский":
		return Female, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownGender, text)
}

func (g Gender) String() string {
	if g == Unknown {
		return "unknown"
	}
	return string(g)
}
