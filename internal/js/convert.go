// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package js

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// ToNative converts v into plain Go values: string, int64, map[string]any,
// and []any.
func ToNative(v Value) any {
	switch tv := v.(type) {
	case String:
		return string(tv)
	case Number:
		return int64(tv)
	case Object:
		out := make(map[string]any, len(tv))
		for k, item := range tv {
			out[k] = ToNative(item)
		}
		return out
	case Array:
		out := make([]any, 0, len(tv))
		for _, item := range tv {
			out = append(out, ToNative(item))
		}
		return out
	default:
		return nil
	}
}

// ToProto converts v into a protobuf Value. Numbers become doubles, which
// represent every int32 exactly.
func ToProto(v Value) (*structpb.Value, error) {
	if v == nil {
		return nil, fmt.Errorf("cannot convert a nil value")
	}
	return structpb.NewValue(ToNative(v))
}
