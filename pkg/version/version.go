// Package version compares dotted version strings such as "8.3", "9" or "9.0.1-beta".
package version

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	ErrInvalidOperator = errors.New("invalid operator")
	ErrInvalidVersion  = errors.New("invalid version")
)

// Canonical normalizes v to the "vMAJOR[.MINOR[.PATCH]][-pre]" form understood by semver.
func Canonical(v string) (string, error) {
	s := strings.TrimSpace(v)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidVersion)
	}
	if s[0] != 'v' && s[0] != 'V' {
		s = "v" + s
	} else {
		s = "v" + s[1:]
	}
	if !semver.IsValid(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, v)
	}
	return s, nil
}

// Compare returns -1, 0 or +1 depending on whether a is lower than, equal to
// or greater than b.
func Compare(a, b string) (int, error) {
	ca, err := Canonical(a)
	if err != nil {
		return 0, err
	}
	cb, err := Canonical(b)
	if err != nil {
		return 0, err
	}
	return semver.Compare(ca, cb), nil
}

// CompareWith reports whether "a op b" holds. Supported operators are
// <, lt, <=, le, >, gt, >=, ge, ==, =, eq, !=, <> and ne.
func CompareWith(a, b, op string) (bool, error) {
	check, ok := operators[op]
	if !ok {
		return false, fmt.Errorf("%w: Invalid operator: %s", ErrInvalidOperator, op)
	}
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return check(c), nil
}

// ValidOperator reports whether op is accepted by CompareWith.
func ValidOperator(op string) bool {
	_, ok := operators[op]
	return ok
}

var operators = map[string]func(int) bool{
	"<":  func(c int) bool { return c < 0 },
	"lt": func(c int) bool { return c < 0 },
	"<=": func(c int) bool { return c <= 0 },
	"le": func(c int) bool { return c <= 0 },
	">":  func(c int) bool { return c > 0 },
	"gt": func(c int) bool { return c > 0 },
	">=": func(c int) bool { return c >= 0 },
	"ge": func(c int) bool { return c >= 0 },
	"==": func(c int) bool { return c == 0 },
	"=":  func(c int) bool { return c == 0 },
	"eq": func(c int) bool { return c == 0 },
	"!=": func(c int) bool { return c != 0 },
	"<>": func(c int) bool { return c != 0 },
	"ne": func(c int) bool { return c != 0 },
}
