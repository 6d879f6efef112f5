// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parsecomb

import "reflect"

// Alt tries each parser in order and returns the first success. This is
// ordered choice: a later branch is never tried once an earlier one matched,
// even if it would have consumed more input. Alt panics when given no
// parsers.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		panic("parsecomb: alt requires at least one parser")
	}
	return func(c *Cursor) (T, error) {
		cp := c.checkpoint()
		defer cp.rewind()

		for _, p := range ps {
			v, err := p(c)
			if err == nil {
				cp.commit()
				return v, nil
			}
		}
		return fail[T]()
	}
}

// Alt2 is ordered choice between branches of different types. The result
// records which branch matched. Alt2 panics with ErrDuplicateBranchType if A
// and B are the same type; use Alt for same-typed branches.
func Alt2[A, B any](pa Parser[A], pb Parser[B]) Parser[Union2[A, B]] {
	mustDistinct(typeFor[A](), typeFor[B]())
	return Alt(
		Map(pa, Union2V0[A, B]),
		Map(pb, Union2V1[A, B]),
	)
}

// Alt3 is the three branch form of Alt2.
func Alt3[A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Union3[A, B, C]] {
	mustDistinct(typeFor[A](), typeFor[B](), typeFor[C]())
	return Alt(
		Map(pa, Union3V0[A, B, C]),
		Map(pb, Union3V1[A, B, C]),
		Map(pc, Union3V2[A, B, C]),
	)
}

// Alt4 is the four branch form of Alt2.
func Alt4[A, B, C, D any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D]) Parser[Union4[A, B, C, D]] {
	mustDistinct(typeFor[A](), typeFor[B](), typeFor[C](), typeFor[D]())
	return Alt(
		Map(pa, Union4V0[A, B, C, D]),
		Map(pb, Union4V1[A, B, C, D]),
		Map(pc, Union4V2[A, B, C, D]),
		Map(pd, Union4V3[A, B, C, D]),
	)
}

// typeFor returns the reflect.Type for T. It is equivalent to reflect.TypeFor,
// which is not available before Go 1.22.
func typeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
