// Package size converts human-readable size literals ("10MB", "512", "2g")
// into C constant expressions that evaluate to a byte count.
package size

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidSizeFormat is matched by every error ParseFileSize returns.
var ErrInvalidSizeFormat = errors.New("invalid size format")

// InvalidSizeFormatError reports a literal that does not fit <digits><unit>.
type InvalidSizeFormatError struct {
	Value string
}

func (e *InvalidSizeFormatError) Error() string {
	return fmt.Sprintf("Invalid FILE_SIZE format: '%s'", e.Value)
}

func (e *InvalidSizeFormatError) Is(target error) bool {
	return target == ErrInvalidSizeFormat
}

// literal matches digits followed by an optional K/M/G and an optional B.
var literal = regexp.MustCompile(`^([0-9]+)([KkMmGg]?[Bb]?)$`)

// ParseFileSize turns a size literal into an expression such as
// "(10 * 1024 * 1024)". Surrounding whitespace is ignored; anything else
// outside the grammar, including internal spaces, is rejected.
func ParseFileSize(s string) (string, error) {
	s = strings.TrimSpace(s)
	m := literal.FindStringSubmatch(s)
	if m == nil {
		return "", &InvalidSizeFormatError{Value: s}
	}
	n := canonical(m[1])

	switch strings.ToLower(m[2]) {
	case "", "b":
		return n, nil
	case "k", "kb":
		return "(" + n + " * 1024)", nil
	case "m", "mb":
		return "(" + n + " * 1024 * 1024)", nil
	case "g", "gb":
		return "(" + n + " * 1024 * 1024 * 1024)", nil
	default:
		return "", &InvalidSizeFormatError{Value: s}
	}
}

// canonical drops leading zeros so "007" prints as "7". The digit string is
// never converted to a machine integer, so arbitrarily long values survive.
func canonical(digits string) string {
	if t := strings.TrimLeft(digits, "0"); t != "" {
		return t
	}
	return "0"
}
