package russian

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoCount is returned by ParseCountWord when neither argument is an integer.
var ErrNoCount = errors.New("no count")

// Pluralize formats "<count> <word>" with word agreeing with count:
// 1 стол, 2 стола, 5 столов.
func (e *Engine) Pluralize(count int, word string, animate bool) string {
	return strconv.Itoa(count) + " " + e.plurals.Pluralize(count, word, animate)
}

// Pluralize calls Default().Pluralize.
func Pluralize(count int, word string, animate bool) string {
	return Default().Pluralize(count, word, animate)
}

// ParseCountWord reads a count and a word given in either order,
// as in ("5", "стол") or the older ("стол", "5").
func ParseCountWord(a, b string) (int, string, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(a)); err == nil {
		return n, b, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(b)); err == nil {
		return n, a, nil
	}
	return 0, "", fmt.Errorf("%w: %q, %q", ErrNoCount, a, b)
}
