// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parsecomb

// Map applies f to the value of p on success. Failures pass through and f is
// not called.
func Map[T any, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(c *Cursor) (U, error) {
		v, err := p(c)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v), nil
	}
}

// To replaces the value of p with v.
func To[T any, U any](p Parser[T], v U) Parser[U] {
	return Map(p, func(T) U { return v })
}
