// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parsecomb

import (
	"math"

	"gopkg.microglot.org/parsecomb.go/optional"
)

// Unbounded is the upper repetition bound that never stops a loop.
const Unbounded = math.MaxInt

// FoldMany applies item repeatedly, combining each value into agg, until item
// fails or upper values have been accumulated. Repetition is greedy and never
// gives back matches to satisfy what follows. Fewer than lower matches is a
// failure.
//
// An item that succeeds without consuming input would match forever; once
// lower is satisfied such a match ends the loop.
func FoldMany[T, A any](lower int, upper int, item Parser[T], agg Aggregator[T, A]) Parser[A] {
	return func(c *Cursor) (A, error) {
		cp := c.checkpoint()
		defer cp.rewind()

		acc := agg.Init()
		count := 0
		for count < upper {
			start := c.Offset()
			v, err := item(c)
			if err != nil {
				break
			}
			acc = agg.Combine(acc, v)
			count = count + 1
			if c.Offset() == start && count >= lower {
				break
			}
		}
		if count < lower {
			return fail[A]()
		}
		cp.commit()
		return acc, nil
	}
}

// FoldZeroOrMore is FoldMany without bounds.
func FoldZeroOrMore[T, A any](item Parser[T], agg Aggregator[T, A]) Parser[A] {
	return FoldMany(0, Unbounded, item, agg)
}

// FoldOneOrMore is FoldMany requiring at least lower matches and no upper
// bound.
func FoldOneOrMore[T, A any](lower int, item Parser[T], agg Aggregator[T, A]) Parser[A] {
	if lower < 1 {
		lower = 1
	}
	return FoldMany(lower, Unbounded, item, agg)
}

// Many collects between lower and upper values of item.
func Many[T any](lower int, upper int, item Parser[T]) Parser[[]T] {
	return FoldMany(lower, upper, item, SliceAggregator[T]())
}

// ManyZeroOrMore collects every consecutive match of item, possibly none.
func ManyZeroOrMore[T any](item Parser[T]) Parser[[]T] {
	return Many(0, Unbounded, item)
}

// ManyOneOrMore is ManyZeroOrMore requiring at least one match.
func ManyOneOrMore[T any](item Parser[T]) Parser[[]T] {
	return Many(1, Unbounded, item)
}

// Maybe matches p zero or one times and always succeeds.
func Maybe[T any](p Parser[T]) Parser[Unit] {
	return FoldMany(0, 1, p, discardAggregator[T]())
}

// Opt is Maybe that keeps the value of p when it matched.
func Opt[T any](p Parser[T]) Parser[optional.Optional[T]] {
	return func(c *Cursor) (optional.Optional[T], error) {
		v, err := p(c)
		if err != nil {
			return optional.None[T](), nil
		}
		return optional.Some(v), nil
	}
}

// FoldSeparated parses item (sep item)* and folds every item into agg. At
// least one item is required and a trailing separator is not consumed as
// part of a successful match.
func FoldSeparated[T, S, A any](item Parser[T], sep Parser[S], agg Aggregator[T, A]) Parser[A] {
	leading := FoldMany(0, Unbounded, DiscardTerminated(item, sep), agg)
	return func(c *Cursor) (A, error) {
		cp := c.checkpoint()
		defer cp.rewind()

		acc, err := leading(c)
		if err != nil {
			return fail[A]()
		}
		last, err := item(c)
		if err != nil {
			return fail[A]()
		}
		acc = agg.Combine(acc, last)
		cp.commit()
		return acc, nil
	}
}

// SeparatedList parses item (sep item)* into a slice.
func SeparatedList[T, S any](item Parser[T], sep Parser[S]) Parser[[]T] {
	return FoldSeparated(item, sep, SliceAggregator[T]())
}

// SeparatedMap parses key/value items separated by sep into a map. A
// repeated key keeps the last value.
func SeparatedMap[K comparable, V any, S any](item Parser[Tuple2[K, V]], sep Parser[S]) Parser[map[K]V] {
	return FoldSeparated(item, sep, MapAggregator[K, V]())
}
