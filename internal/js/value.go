// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package js

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Value is one of String, Number, Object, or Array.
type Value interface {
	isValue()
}

type String string

type Number int32

// Object maps member names to values. A name repeated in the source keeps
// its last value.
type Object map[string]Value

type Array []Value

func (String) isValue() {}
func (Number) isValue() {}
func (Object) isValue() {}
func (Array) isValue()  {}

// Equal reports whether a and b are structurally identical trees.
func Equal(a Value, b Value) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Object:
		bv, ok := b.(Object)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, ok := bv[k]
			if !ok || !Equal(v, other) {
				return false
			}
		}
		return true
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Format renders v in the grammar's own syntax with object members sorted by
// name, so the output parses back to an equal tree.
func Format(v Value) string {
	var b strings.Builder
	format(&b, v)
	return b.String()
}

func format(b *strings.Builder, v Value) {
	switch tv := v.(type) {
	case String:
		b.WriteByte('"')
		b.WriteString(string(tv))
		b.WriteByte('"')
	case Number:
		b.WriteString(strconv.FormatInt(int64(tv), 10))
	case Object:
		keys := make([]string, 0, len(tv))
		for k := range tv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			format(b, String(k))
			b.WriteString(": ")
			format(b, tv[k])
		}
		b.WriteByte('}')
	case Array:
		b.WriteByte('[')
		for i, item := range tv {
			if i > 0 {
				b.WriteString(", ")
			}
			format(b, item)
		}
		b.WriteByte(']')
	default:
		fmt.Fprintf(b, "<invalid %T>", v)
	}
}
