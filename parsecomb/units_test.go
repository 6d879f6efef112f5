// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parsecomb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	t.Parallel()

	c := NewCursor("hello")
	require.Equal(t, 0, c.Offset())
	require.Equal(t, 5, c.Len())
	require.False(t, c.AtEnd())

	c.advance(2)
	require.Equal(t, "he", c.Consumed())
	require.Equal(t, "llo", c.Remaining())
	require.Equal(t, "hello", c.Input())

	cp := c.checkpoint()
	c.advance(3)
	require.True(t, c.AtEnd())
	require.Equal(t, 3, cp.consumed())
	cp.rewind()
	require.Equal(t, 2, c.Offset())

	cp = c.checkpoint()
	c.advance(1)
	cp.commit()
	cp.rewind()
	require.Equal(t, 3, c.Offset())
}

func TestError(t *testing.T) {
	t.Parallel()

	_, err := Literal("a")(NewCursor("b"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNoMatch)

	var perr *Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, ErrorKindUnknown, perr.Kind)
	require.Equal(t, "parse failed: unknown failure", err.Error())
}

func TestLiteral(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		text       string
		input      string
		ok         bool
		wantOffset int
	}{
		{name: "exact", text: "abc", input: "abc", ok: true, wantOffset: 3},
		{name: "prefix", text: "abc", input: "abcdef", ok: true, wantOffset: 3},
		{name: "mismatch", text: "abc", input: "abx", ok: false, wantOffset: 0},
		{name: "input too short", text: "abc", input: "ab", ok: false, wantOffset: 0},
		{name: "empty input", text: "a", input: "", ok: false, wantOffset: 0},
		{name: "empty literal", text: "", input: "", ok: true, wantOffset: 0},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			c := NewCursor(testCase.input)
			v, err := Literal(testCase.text)(c)
			if testCase.ok {
				require.NoError(t, err)
				require.Equal(t, Nothing, v)
			} else {
				require.ErrorIs(t, err, ErrNoMatch)
			}
			require.Equal(t, testCase.wantOffset, c.Offset())
		})
	}
}

func TestCharRange(t *testing.T) {
	t.Parallel()

	lower := CharRange('a', 'z')

	v, err := lower(NewCursor("q1"))
	require.NoError(t, err)
	require.Equal(t, byte('q'), v)

	for _, input := range []string{"", "A", "1", "{"} {
		c := NewCursor(input)
		_, err := lower(c)
		require.ErrorIs(t, err, ErrNoMatch, input)
		require.Equal(t, 0, c.Offset(), input)
	}

	c := NewCursor("xy")
	v, err = Char('x')(c)
	require.NoError(t, err)
	require.Equal(t, byte('x'), v)
	require.Equal(t, 1, c.Offset())
	_, err = Char('x')(c)
	require.Error(t, err)
	require.Equal(t, 1, c.Offset())
}

func TestWhitespace(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		min        int
		input      string
		ok         bool
		wantOffset int
	}{
		{name: "consumes whole run", min: 1, input: " \t\n\r\v\fx", ok: true, wantOffset: 6},
		{name: "more than minimum", min: 2, input: "  \t x", ok: true, wantOffset: 4},
		{name: "fewer than minimum", min: 2, input: " x", ok: false, wantOffset: 0},
		{name: "zero minimum without space", min: 0, input: "x", ok: true, wantOffset: 0},
		{name: "zero minimum on empty input", min: 0, input: "", ok: true, wantOffset: 0},
		{name: "minimum on empty input", min: 1, input: "", ok: false, wantOffset: 0},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			c := NewCursor(testCase.input)
			_, err := Whitespace(testCase.min)(c)
			if testCase.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrNoMatch)
			}
			require.Equal(t, testCase.wantOffset, c.Offset())
		})
	}
}

func TestSignedInteger(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		input      string
		ok         bool
		expected   int32
		wantOffset int
	}{
		{name: "positive", input: "1250", ok: true, expected: 1250, wantOffset: 4},
		{name: "negative", input: "-223", ok: true, expected: -223, wantOffset: 4},
		{name: "stops at non digit", input: "12ab", ok: true, expected: 12, wantOffset: 2},
		{name: "leading zeros", input: "007", ok: true, expected: 7, wantOffset: 3},
		{name: "max", input: "2147483647", ok: true, expected: 2147483647, wantOffset: 10},
		{name: "min", input: "-2147483648", ok: true, expected: -2147483648, wantOffset: 11},
		{name: "overflow", input: "2147483648", ok: false, wantOffset: 0},
		{name: "negative overflow", input: "-2147483649", ok: false, wantOffset: 0},
		{name: "sign only", input: "-", ok: false, wantOffset: 0},
		{name: "sign then letter", input: "-a", ok: false, wantOffset: 0},
		{name: "plus sign", input: "+1", ok: false, wantOffset: 0},
		{name: "empty", input: "", ok: false, wantOffset: 0},
		{name: "leading space", input: " 1", ok: false, wantOffset: 0},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			c := NewCursor(testCase.input)
			v, err := SignedInteger()(c)
			if testCase.ok {
				require.NoError(t, err)
				require.Equal(t, testCase.expected, v)
			} else {
				require.ErrorIs(t, err, ErrNoMatch)
			}
			require.Equal(t, testCase.wantOffset, c.Offset())
		})
	}
}

func TestRecognize(t *testing.T) {
	t.Parallel()

	digits := Recognize(ManyOneOrMore(CharRange('0', '9')))

	c := NewCursor("123x")
	v, err := digits(c)
	require.NoError(t, err)
	require.Equal(t, "123", v)
	require.Equal(t, "x", c.Remaining())

	c = NewCursor("x")
	_, err = digits(c)
	require.Error(t, err)
	require.Equal(t, 0, c.Offset())
}

func TestEnd(t *testing.T) {
	t.Parallel()

	_, err := End()(NewCursor(""))
	require.NoError(t, err)

	c := NewCursor("a")
	_, err = End()(c)
	require.Error(t, err)
	_, _ = Char('a')(c)
	_, err = End()(c)
	require.NoError(t, err)
}

func TestParseAll(t *testing.T) {
	t.Parallel()

	v, err := ParseAll(SignedInteger(), "-12")
	require.NoError(t, err)
	require.Equal(t, int32(-12), v)

	_, err = ParseAll(SignedInteger(), "-12 ")
	require.ErrorIs(t, err, ErrNoMatch)

	v, c, err := Parse(SignedInteger(), "-12 ")
	require.NoError(t, err)
	require.Equal(t, int32(-12), v)
	require.Equal(t, " ", c.Remaining())
}

func TestMap(t *testing.T) {
	t.Parallel()

	called := false
	double := Map(SignedInteger(), func(v int32) int64 {
		called = true
		return int64(v) * 2
	})

	v, err := double(NewCursor("21"))
	require.NoError(t, err)
	require.Equal(t, int64(42), v)
	require.True(t, called)

	called = false
	c := NewCursor("x")
	_, err = double(c)
	require.ErrorIs(t, err, ErrNoMatch)
	require.False(t, called)
	require.Equal(t, 0, c.Offset())

	yes := To(Literal("yes"), true)
	b, err := yes(NewCursor("yes"))
	require.NoError(t, err)
	require.True(t, b)
}
