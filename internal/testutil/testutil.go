// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"

	"github.com/creachadair/jparse"
)

// ToAny converts a parsed tree to the value shapes produced by the standard
// JSON decoders: nil, bool, float32, string, []any, and map[string]any.
// Compare against a decoded document normalized with Normalize.
func ToAny(v jparse.Value) any {
	switch t := v.(type) {
	case jparse.Null:
		return nil
	case jparse.Bool:
		return bool(t)
	case jparse.Number:
		return float32(t)
	case jparse.String:
		return string(t)
	case jparse.Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = ToAny(elt)
		}
		return out
	case jparse.Object:
		out := make(map[string]any, len(t))
		for key, val := range t {
			out[key] = ToAny(val)
		}
		return out
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}

// Normalize rewrites a tree of any values decoded by encoding/json or a
// compatible decoder so that it is comparable with the output of ToAny,
// narrowing float64 to float32.
func Normalize(v any) any {
	switch t := v.(type) {
	case float64:
		return float32(t)
	case []any:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = Normalize(elt)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for key, val := range t {
			out[key] = Normalize(val)
		}
		return out
	default:
		return v
	}
}
