// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parsecomb

// Aggregator folds the values of a repeated parser into an accumulator. Init
// is called once per parse to build a fresh seed. Combine must not fail; only
// the repeated parser can.
type Aggregator[T, A any] struct {
	Init    func() A
	Combine func(acc A, item T) A
}

// SliceAggregator appends every item to a slice, preserving order.
func SliceAggregator[T any]() Aggregator[T, []T] {
	return Aggregator[T, []T]{
		Init: func() []T { return []T{} },
		Combine: func(acc []T, item T) []T {
			return append(acc, item)
		},
	}
}

// BytesAggregator collects matched bytes, typically from CharRange.
func BytesAggregator() Aggregator[byte, []byte] {
	return Aggregator[byte, []byte]{
		Init: func() []byte { return []byte{} },
		Combine: func(acc []byte, item byte) []byte {
			return append(acc, item)
		},
	}
}

// MapAggregator builds a map from key/value pairs. A repeated key keeps the
// last value seen.
func MapAggregator[K comparable, V any]() Aggregator[Tuple2[K, V], map[K]V] {
	return Aggregator[Tuple2[K, V], map[K]V]{
		Init: func() map[K]V { return map[K]V{} },
		Combine: func(acc map[K]V, item Tuple2[K, V]) map[K]V {
			acc[item.V0] = item.V1
			return acc
		},
	}
}

// CountAggregator counts matches and discards their values.
func CountAggregator[T any]() Aggregator[T, int] {
	return Aggregator[T, int]{
		Init: func() int { return 0 },
		Combine: func(acc int, _ T) int {
			return acc + 1
		},
	}
}

func discardAggregator[T any]() Aggregator[T, Unit] {
	return Aggregator[T, Unit]{
		Init:    func() Unit { return Nothing },
		Combine: func(acc Unit, _ T) Unit { return acc },
	}
}
