// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parsecomb

import "fmt"

// Parser consumes a prefix of the cursor's remaining input and produces a
// value. A parser that returns a non-nil error must leave the cursor exactly
// where it found it.
type Parser[T any] func(c *Cursor) (T, error)

// ErrorKind classifies a parse failure. There is only one kind today; new
// kinds are expected to carry context such as the expected token set.
type ErrorKind uint8

const (
	ErrorKindUnknown ErrorKind = iota
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindUnknown:
		return "unknown failure"
	default:
		return fmt.Sprintf("unknown-kind-%d", uint8(k))
	}
}

// Error is the only error type returned by parsers.
type Error struct {
	Kind ErrorKind
}

func (e *Error) Error() string {
	return "parse failed: " + e.Kind.String()
}

// Is matches any *Error of the same kind so that errors.Is works against
// ErrNoMatch.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// ErrNoMatch is returned by every parser that fails to match.
var ErrNoMatch error = &Error{Kind: ErrorKindUnknown}

func fail[T any]() (T, error) {
	var zero T
	return zero, ErrNoMatch
}

// Unit is the value of parsers that carry no data.
type Unit struct{}

// Nothing is the only Unit value.
var Nothing = Unit{}

// Parse runs p against a fresh cursor over input. The cursor is returned so
// that callers can inspect what was left unconsumed.
func Parse[T any](p Parser[T], input string) (T, *Cursor, error) {
	c := NewCursor(input)
	v, err := p(c)
	return v, c, err
}

// ParseAll runs p against input and fails unless the whole input was
// consumed.
func ParseAll[T any](p Parser[T], input string) (T, error) {
	c := NewCursor(input)
	v, err := p(c)
	if err != nil {
		return v, err
	}
	if !c.AtEnd() {
		return fail[T]()
	}
	return v, nil
}
