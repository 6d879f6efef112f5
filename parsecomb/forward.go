// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parsecomb

// Forward is a placeholder for a parser that is defined after the parsers
// that refer to it. Mutually recursive rules are declared as forwards, used
// through Parse, and then bound with Define once every rule exists.
//
//	var list Forward[[]int32]
//	item := Alt(SignedInteger(), Map(Parser[[]int32](list.Parse), sum))
//	list.Define(DiscardSurround(Char('['), SeparatedList(item, Char(',')), Char(']')))
type Forward[T any] struct {
	p Parser[T]
}

// Define binds the placeholder to p. Define panics if called twice.
func (f *Forward[T]) Define(p Parser[T]) {
	if f.p != nil {
		panic("parsecomb: forward parser defined twice")
	}
	f.p = p
}

// Parse runs the bound parser. It panics if Define was never called.
func (f *Forward[T]) Parse(c *Cursor) (T, error) {
	if f.p == nil {
		panic("parsecomb: forward parser used before it was defined")
	}
	return f.p(c)
}
