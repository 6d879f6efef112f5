// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parsecomb

// Tuple2 is the result of a two element sequence.
type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

// Tuple3 is the result of a three element sequence.
type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// Tuple4 is the result of a four element sequence.
type Tuple4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// Tuple5 is the result of a five element sequence.
type Tuple5[A, B, C, D, E any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
}

// Seq2 runs pa then pb. If either fails the cursor is restored to where pa
// started.
func Seq2[A, B any](pa Parser[A], pb Parser[B]) Parser[Tuple2[A, B]] {
	return func(c *Cursor) (Tuple2[A, B], error) {
		cp := c.checkpoint()
		defer cp.rewind()

		var result Tuple2[A, B]
		var err error
		if result.V0, err = pa(c); err != nil {
			return fail[Tuple2[A, B]]()
		}
		if result.V1, err = pb(c); err != nil {
			return fail[Tuple2[A, B]]()
		}
		cp.commit()
		return result, nil
	}
}

// Seq3 is the three parser form of Seq2.
func Seq3[A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Tuple3[A, B, C]] {
	return func(c *Cursor) (Tuple3[A, B, C], error) {
		cp := c.checkpoint()
		defer cp.rewind()

		var result Tuple3[A, B, C]
		var err error
		if result.V0, err = pa(c); err != nil {
			return fail[Tuple3[A, B, C]]()
		}
		if result.V1, err = pb(c); err != nil {
			return fail[Tuple3[A, B, C]]()
		}
		if result.V2, err = pc(c); err != nil {
			return fail[Tuple3[A, B, C]]()
		}
		cp.commit()
		return result, nil
	}
}

// Seq4 is the four parser form of Seq2.
func Seq4[A, B, C, D any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D]) Parser[Tuple4[A, B, C, D]] {
	return func(c *Cursor) (Tuple4[A, B, C, D], error) {
		cp := c.checkpoint()
		defer cp.rewind()

		var result Tuple4[A, B, C, D]
		var err error
		if result.V0, err = pa(c); err != nil {
			return fail[Tuple4[A, B, C, D]]()
		}
		if result.V1, err = pb(c); err != nil {
			return fail[Tuple4[A, B, C, D]]()
		}
		if result.V2, err = pc(c); err != nil {
			return fail[Tuple4[A, B, C, D]]()
		}
		if result.V3, err = pd(c); err != nil {
			return fail[Tuple4[A, B, C, D]]()
		}
		cp.commit()
		return result, nil
	}
}

// Seq5 is the five parser form of Seq2.
func Seq5[A, B, C, D, E any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E]) Parser[Tuple5[A, B, C, D, E]] {
	return func(c *Cursor) (Tuple5[A, B, C, D, E], error) {
		cp := c.checkpoint()
		defer cp.rewind()

		var result Tuple5[A, B, C, D, E]
		var err error
		if result.V0, err = pa(c); err != nil {
			return fail[Tuple5[A, B, C, D, E]]()
		}
		if result.V1, err = pb(c); err != nil {
			return fail[Tuple5[A, B, C, D, E]]()
		}
		if result.V2, err = pc(c); err != nil {
			return fail[Tuple5[A, B, C, D, E]]()
		}
		if result.V3, err = pd(c); err != nil {
			return fail[Tuple5[A, B, C, D, E]]()
		}
		if result.V4, err = pe(c); err != nil {
			return fail[Tuple5[A, B, C, D, E]]()
		}
		cp.commit()
		return result, nil
	}
}
