// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jparse

import "fmt"

// A PathFunc is called during a [Path] traversal to transform the value
// reached so far. If it reports an error the traversal fails.
type PathFunc func(Value) (Value, error)

// Path traverses the given sequence of keys from v and returns the value
// reached, or an error describing the first key that could not be applied.
// An empty path returns v unchanged.
//
// Each key must be a string (selecting the member of an [Object] with that
// key), an int (selecting the element of an [Array] at that offset, with
// negative offsets counting backward from the end), or a [PathFunc].
func Path(v Value, keys ...any) (Value, error) {
	for _, key := range keys {
		switch t := key.(type) {
		case string:
			o, ok := v.(Object)
			if !ok {
				return nil, fmt.Errorf("cannot traverse %v by key %q", v, t)
			}
			next := o.Find(t)
			if next == nil {
				return nil, fmt.Errorf("key %q not found", t)
			}
			v = next
		case int:
			a, ok := v.(Array)
			if !ok {
				return nil, fmt.Errorf("cannot traverse %v by offset %d", v, t)
			}
			idx := t
			if idx < 0 {
				idx += len(a)
			}
			if idx < 0 || idx >= len(a) {
				return nil, fmt.Errorf("offset %d out of range (0..%d)", t, len(a))
			}
			v = a[idx]
		case PathFunc:
			next, err := t(v)
			if err != nil {
				return nil, err
			}
			v = next
		case func(Value) (Value, error):
			next, err := t(v)
			if err != nil {
				return nil, err
			}
			v = next
		default:
			return nil, fmt.Errorf("invalid path key %T", key)
		}
	}
	return v, nil
}
