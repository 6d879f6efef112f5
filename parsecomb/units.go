// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parsecomb

import (
	"math"
	"strings"
)

// Literal matches text as an exact prefix of the remaining input.
func Literal(text string) Parser[Unit] {
	return func(c *Cursor) (Unit, error) {
		cp := c.checkpoint()
		defer cp.rewind()

		if !strings.HasPrefix(c.Remaining(), text) {
			return fail[Unit]()
		}
		c.advance(len(text))
		cp.commit()
		return Nothing, nil
	}
}

// CharRange matches a single byte within [low, high].
func CharRange(low byte, high byte) Parser[byte] {
	return func(c *Cursor) (byte, error) {
		cp := c.checkpoint()
		defer cp.rewind()

		b, ok := c.peek()
		if !ok || b < low || b > high {
			return fail[byte]()
		}
		c.advance(1)
		cp.commit()
		return b, nil
	}
}

// Char matches exactly the byte ch.
func Char(ch byte) Parser[byte] {
	return CharRange(ch, ch)
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// Whitespace consumes the whole run of whitespace at the cursor and succeeds
// only if the run is at least minCount bytes long.
func Whitespace(minCount int) Parser[Unit] {
	return func(c *Cursor) (Unit, error) {
		cp := c.checkpoint()
		defer cp.rewind()

		for {
			b, ok := c.peek()
			if !ok || !isSpace(b) {
				break
			}
			c.advance(1)
		}
		if cp.consumed() < minCount {
			return fail[Unit]()
		}
		cp.commit()
		return Nothing, nil
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// SignedInteger matches an optional '-' followed by one or more decimal
// digits. Values outside the int32 range fail to match.
func SignedInteger() Parser[int32] {
	return func(c *Cursor) (int32, error) {
		cp := c.checkpoint()
		defer cp.rewind()

		negative := false
		if b, ok := c.peek(); ok && b == '-' {
			negative = true
			c.advance(1)
		}
		// The magnitude of math.MinInt32 is one larger than math.MaxInt32.
		limit := int64(math.MaxInt32)
		if negative {
			limit = limit + 1
		}

		var value int64
		digits := 0
		for {
			b, ok := c.peek()
			if !ok || !isDigit(b) {
				break
			}
			value = value*10 + int64(b-'0')
			if value > limit {
				return fail[int32]()
			}
			digits = digits + 1
			c.advance(1)
		}
		if digits == 0 {
			return fail[int32]()
		}
		if negative {
			value = -value
		}
		cp.commit()
		return int32(value), nil
	}
}

// Recognize runs p and returns the text it consumed instead of its value.
func Recognize[T any](p Parser[T]) Parser[string] {
	return func(c *Cursor) (string, error) {
		cp := c.checkpoint()
		defer cp.rewind()

		start := c.Offset()
		if _, err := p(c); err != nil {
			return "", err
		}
		cp.commit()
		return c.Input()[start:c.Offset()], nil
	}
}

// End matches only when no input remains.
func End() Parser[Unit] {
	return func(c *Cursor) (Unit, error) {
		if !c.AtEnd() {
			return fail[Unit]()
		}
		return Nothing, nil
	}
}
