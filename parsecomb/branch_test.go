// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parsecomb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type point struct {
	x, y, z int32
}

type circle struct {
	radius int32
}

var separator = To(Seq2(Literal(","), Whitespace(0)), Nothing)

func parsePoint() Parser[point] {
	coordinates := Map(
		Seq5(SignedInteger(), separator, SignedInteger(), separator, SignedInteger()),
		func(t Tuple5[int32, Unit, int32, Unit, int32]) point {
			return point{x: t.V0, y: t.V2, z: t.V4}
		},
	)
	return DiscardPreceded(Literal("Point: "), DiscardSurround(Literal("("), coordinates, Literal(")")))
}

func parseZeroPoint() Parser[point] {
	return To(Literal("ZeroPoint"), point{})
}

func parseCircle() Parser[circle] {
	return Map(DiscardPreceded(Literal("Circle: "), SignedInteger()), func(r int32) circle {
		return circle{radius: r}
	})
}

func TestPoint(t *testing.T) {
	t.Parallel()

	v, err := ParseAll(parsePoint(), "Point: (1,   -1100,-12)")
	require.NoError(t, err)
	require.Equal(t, point{x: 1, y: -1100, z: -12}, v)

	points := ManyZeroOrMore(DiscardTerminated(parsePoint(), Seq2(Literal(";"), Whitespace(0))))
	c := NewCursor("Point: (1,   -1100,-12); Point: (22, 33, 44); Point: (123, 12, -1);")
	vs, err := points(c)
	require.NoError(t, err)
	require.Equal(t, []point{{1, -1100, -12}, {22, 33, 44}, {123, 12, -1}}, vs)
	require.Equal(t, 0, c.Len())
}

func TestAltOrderedChoice(t *testing.T) {
	t.Parallel()

	long := To(Literal("ab"), "long")
	short := To(Literal("a"), "short")

	c := NewCursor("ab")
	v, err := Alt(long, short)(c)
	require.NoError(t, err)
	require.Equal(t, "long", v)
	require.Equal(t, 2, c.Offset())

	c = NewCursor("ab")
	v, err = Alt(short, long)(c)
	require.NoError(t, err)
	require.Equal(t, "short", v)
	require.Equal(t, 1, c.Offset())

	c = NewCursor("b")
	_, err = Alt(short, long)(c)
	require.ErrorIs(t, err, ErrNoMatch)
	require.Equal(t, 0, c.Offset())

	require.Panics(t, func() { Alt[int]() })
}

func TestAltSameType(t *testing.T) {
	t.Parallel()

	c := NewCursor("Point: (1,   -1100,-12);ZeroPoint")
	shape := Alt(parsePoint(), parseZeroPoint())

	first, err := shape(c)
	require.NoError(t, err)
	_, err = Literal(";")(c)
	require.NoError(t, err)
	second, err := shape(c)
	require.NoError(t, err)

	require.Equal(t, 0, c.Len())
	require.Equal(t, point{x: 1, y: -1100, z: -12}, first)
	require.Equal(t, point{}, second)
}

func TestAltDifferentTypes(t *testing.T) {
	t.Parallel()

	shape := Alt2(parsePoint(), parseCircle())

	v, err := ParseAll(shape, "Point: (1, -2, 3)")
	require.NoError(t, err)
	require.Equal(t, 0, v.Index())
	p, ok := v.V0()
	require.True(t, ok)
	require.Equal(t, point{x: 1, y: -2, z: 3}, p)
	_, ok = v.V1()
	require.False(t, ok)

	v, err = ParseAll(shape, "Circle: 5")
	require.NoError(t, err)
	require.Equal(t, 1, v.Index())
	ci, ok := v.V1()
	require.True(t, ok)
	require.Equal(t, circle{radius: 5}, ci)

	c := NewCursor("Square: 4")
	_, err = shape(c)
	require.ErrorIs(t, err, ErrNoMatch)
	require.Equal(t, 0, c.Offset())

	name := Match2(v, func(point) string { return "point" }, func(circle) string { return "circle" })
	require.Equal(t, "circle", name)
}

func TestAltWideUnions(t *testing.T) {
	t.Parallel()

	three := Alt3(SignedInteger(), Literal("nil"), CharRange('a', 'z'))
	testCases := []struct {
		input string
		index int
	}{
		{input: "-5", index: 0},
		{input: "nil", index: 1},
		{input: "n", index: 2},
	}
	for _, testCase := range testCases {
		v, err := ParseAll(three, testCase.input)
		require.NoError(t, err, testCase.input)
		require.Equal(t, testCase.index, v.Index(), testCase.input)
	}

	four := Alt4(SignedInteger(), Literal("nil"), CharRange('a', 'z'), Recognize(Literal("{}")))
	v, err := ParseAll(four, "{}")
	require.NoError(t, err)
	require.Equal(t, 3, v.Index())
	s, ok := v.V3()
	require.True(t, ok)
	require.Equal(t, "{}", s)
	kind := Match4(v,
		func(int32) string { return "int" },
		func(Unit) string { return "nil" },
		func(byte) string { return "char" },
		func(string) string { return "text" },
	)
	require.Equal(t, "text", kind)

	u := Union3V1[int32, Unit, byte](Nothing)
	require.Equal(t, "nil", Match3(u,
		func(int32) string { return "int" },
		func(Unit) string { return "nil" },
		func(byte) string { return "char" },
	))
}

func TestAltDuplicateTypes(t *testing.T) {
	t.Parallel()

	err := checkDistinct(typeFor[int32](), typeFor[string](), typeFor[int32]())
	require.ErrorIs(t, err, ErrDuplicateBranchType)
	require.NoError(t, checkDistinct(typeFor[int32](), typeFor[int64]()))

	require.Panics(t, func() { Alt2(SignedInteger(), SignedInteger()) })
	require.Panics(t, func() { Alt3(Literal("a"), CharRange('a', 'z'), Literal("b")) })
	require.Panics(t, func() { Alt4(Char('a'), SignedInteger(), Literal("b"), Char('c')) })
}
