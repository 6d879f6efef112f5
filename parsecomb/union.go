// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parsecomb

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrDuplicateBranchType is the cause of the panic raised when a union
// alternation is built from branches that share a result type.
var ErrDuplicateBranchType = errors.New("parsecomb: alternation branches must produce distinct types")

func checkDistinct(types ...reflect.Type) error {
	seen := make(map[reflect.Type]int, len(types))
	for i, t := range types {
		if j, ok := seen[t]; ok {
			return fmt.Errorf("%w: branches %d and %d both produce %s", ErrDuplicateBranchType, j, i, t)
		}
		seen[t] = i
	}
	return nil
}

func mustDistinct(types ...reflect.Type) {
	if err := checkDistinct(types...); err != nil {
		panic(err)
	}
}

// Union2 holds exactly one of two values. Index reports which.
type Union2[A, B any] struct {
	index int
	v0    A
	v1    B
}

func Union2V0[A, B any](v A) Union2[A, B] {
	return Union2[A, B]{index: 0, v0: v}
}

func Union2V1[A, B any](v B) Union2[A, B] {
	return Union2[A, B]{index: 1, v1: v}
}

func (u Union2[A, B]) Index() int {
	return u.index
}

func (u Union2[A, B]) V0() (A, bool) {
	return u.v0, u.index == 0
}

func (u Union2[A, B]) V1() (B, bool) {
	return u.v1, u.index == 1
}

// Match2 calls the function matching the held alternative.
func Match2[A, B, R any](u Union2[A, B], f0 func(A) R, f1 func(B) R) R {
	if u.index == 0 {
		return f0(u.v0)
	}
	return f1(u.v1)
}

// Union3 holds exactly one of three values. Index reports which.
type Union3[A, B, C any] struct {
	index int
	v0    A
	v1    B
	v2    C
}

func Union3V0[A, B, C any](v A) Union3[A, B, C] {
	return Union3[A, B, C]{index: 0, v0: v}
}

func Union3V1[A, B, C any](v B) Union3[A, B, C] {
	return Union3[A, B, C]{index: 1, v1: v}
}

func Union3V2[A, B, C any](v C) Union3[A, B, C] {
	return Union3[A, B, C]{index: 2, v2: v}
}

func (u Union3[A, B, C]) Index() int {
	return u.index
}

func (u Union3[A, B, C]) V0() (A, bool) {
	return u.v0, u.index == 0
}

func (u Union3[A, B, C]) V1() (B, bool) {
	return u.v1, u.index == 1
}

func (u Union3[A, B, C]) V2() (C, bool) {
	return u.v2, u.index == 2
}

func Match3[A, B, C, R any](u Union3[A, B, C], f0 func(A) R, f1 func(B) R, f2 func(C) R) R {
	switch u.index {
	case 0:
		return f0(u.v0)
	case 1:
		return f1(u.v1)
	default:
		return f2(u.v2)
	}
}

// Union4 holds exactly one of four values. Index reports which.
type Union4[A, B, C, D any] struct {
	index int
	v0    A
	v1    B
	v2    C
	v3    D
}

func Union4V0[A, B, C, D any](v A) Union4[A, B, C, D] {
	return Union4[A, B, C, D]{index: 0, v0: v}
}

func Union4V1[A, B, C, D any](v B) Union4[A, B, C, D] {
	return Union4[A, B, C, D]{index: 1, v1: v}
}

func Union4V2[A, B, C, D any](v C) Union4[A, B, C, D] {
	return Union4[A, B, C, D]{index: 2, v2: v}
}

func Union4V3[A, B, C, D any](v D) Union4[A, B, C, D] {
	return Union4[A, B, C, D]{index: 3, v3: v}
}

func (u Union4[A, B, C, D]) Index() int {
	return u.index
}

func (u Union4[A, B, C, D]) V0() (A, bool) {
	return u.v0, u.index == 0
}

func (u Union4[A, B, C, D]) V1() (B, bool) {
	return u.v1, u.index == 1
}

func (u Union4[A, B, C, D]) V2() (C, bool) {
	return u.v2, u.index == 2
}

func (u Union4[A, B, C, D]) V3() (D, bool) {
	return u.v3, u.index == 3
}

func Match4[A, B, C, D, R any](u Union4[A, B, C, D], f0 func(A) R, f1 func(B) R, f2 func(C) R, f3 func(D) R) R {
	switch u.index {
	case 0:
		return f0(u.v0)
	case 1:
		return f1(u.v1)
	case 2:
		return f2(u.v2)
	default:
		return f3(u.v3)
	}
}
