// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

/*
Package parsecomb builds recursive descent parsers from small combinators.

A Parser is a function of a *Cursor. On success it returns a value and leaves
the cursor after the text it matched. On failure it returns ErrNoMatch and
leaves the cursor exactly where it started. Every combinator in this package
keeps that contract, so a failed sequence never shows partial progress to its
caller:

	point := Seq3(
		DiscardPreceded(Literal("("), SignedInteger()),
		DiscardPreceded(Literal(","), SignedInteger()),
		DiscardSurround(Literal(","), SignedInteger(), Literal(")")),
	)
	v, err := ParseAll(point, "(1,2,3)")

Choice is ordered: Alt returns the first branch that matches. Repetition is
greedy and does not give back matches. There is a single failure kind and no
error recovery.

Branches of different types are combined with Alt2, Alt3, and Alt4, which
return tagged unions. Building one of these from two branches of the same type
panics.
*/
package parsecomb
