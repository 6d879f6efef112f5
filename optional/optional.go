// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package optional provides a value that may or may not be present.
package optional

type Optional[T any] struct {
	present bool
	value   T
}

func (self Optional[T]) IsPresent() bool {
	return self.present
}

// Value returns the wrapped value, or the zero value of T when absent.
func (self Optional[T]) Value() T {
	return self.value
}

// ValueOr returns the wrapped value, or fallback when absent.
func (self Optional[T]) ValueOr(fallback T) T {
	if !self.present {
		return fallback
	}
	return self.value
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}
