// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parsecomb

import "fmt"

// Seq runs each parser in order and collects their values. Either every
// parser succeeds or the cursor is left where the first one started.
func Seq[T any](ps ...Parser[T]) Parser[[]T] {
	return func(c *Cursor) ([]T, error) {
		cp := c.checkpoint()
		defer cp.rewind()

		values := make([]T, 0, len(ps))
		for _, p := range ps {
			v, err := p(c)
			if err != nil {
				return fail[[]T]()
			}
			values = append(values, v)
		}
		cp.commit()
		return values, nil
	}
}

// Take runs the parsers as a sequence and keeps only the value at index.
// Take panics if index is out of range.
func Take[T any](index int, ps ...Parser[T]) Parser[T] {
	if index < 0 || index >= len(ps) {
		panic(fmt.Sprintf("parsecomb: take index %d out of range for %d parsers", index, len(ps)))
	}
	return Map(Seq(ps...), func(vs []T) T { return vs[index] })
}

// TakeOuter runs three parsers in sequence and keeps the first and last
// values.
func TakeOuter[A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Tuple2[A, C]] {
	return Map(Seq3(pa, pb, pc), func(t Tuple3[A, B, C]) Tuple2[A, C] {
		return Tuple2[A, C]{V0: t.V0, V1: t.V2}
	})
}

// DiscardSurround requires open, inner, and close in that order and returns
// the value of inner.
func DiscardSurround[O, T, C any](open Parser[O], inner Parser[T], close Parser[C]) Parser[T] {
	return func(c *Cursor) (T, error) {
		cp := c.checkpoint()
		defer cp.rewind()

		if _, err := open(c); err != nil {
			return fail[T]()
		}
		v, err := inner(c)
		if err != nil {
			return fail[T]()
		}
		if _, err := close(c); err != nil {
			return fail[T]()
		}
		cp.commit()
		return v, nil
	}
}

// DiscardPreceded requires prefix before p and returns the value of p.
func DiscardPreceded[P, T any](prefix Parser[P], p Parser[T]) Parser[T] {
	return func(c *Cursor) (T, error) {
		cp := c.checkpoint()
		defer cp.rewind()

		if _, err := prefix(c); err != nil {
			return fail[T]()
		}
		v, err := p(c)
		if err != nil {
			return fail[T]()
		}
		cp.commit()
		return v, nil
	}
}

// DiscardTerminated requires suffix after p and returns the value of p.
func DiscardTerminated[T, S any](p Parser[T], suffix Parser[S]) Parser[T] {
	return func(c *Cursor) (T, error) {
		cp := c.checkpoint()
		defer cp.rewind()

		v, err := p(c)
		if err != nil {
			return fail[T]()
		}
		if _, err := suffix(c); err != nil {
			return fail[T]()
		}
		cp.commit()
		return v, nil
	}
}
