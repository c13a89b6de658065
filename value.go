// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"fmt"
	"strconv"
)

// A Value is a parsed value: one of Null, Bool, Number, String, Array, or
// Object. The set of kinds is closed; no other type satisfies Value.
type Value interface {
	fmt.Stringer

	isValue()
}

// Null is the null constant.
type Null struct{}

func (Null) isValue() {}

func (Null) String() string { return "null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) isValue() {}

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Value reports the truth value of b.
func (b Bool) Value() bool { return bool(b) }

// A Number is a numeric value. The grammar has a single numeric kind,
// a 32-bit floating-point value; integer literals parse to whole floats.
type Number float32

func (Number) isValue() {}

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 32) }

// Float32 reports the value of n as a float32.
func (n Number) Float32() float32 { return float32(n) }

// A String is a string value, with all escape sequences decoded.
type String string

func (String) isValue() {}

func (s String) String() string { return strconv.Quote(string(s)) }

// Len reports the length of s in bytes.
func (s String) Len() int { return len(s) }

// An Array is an ordered sequence of values.
type Array []Value

func (Array) isValue() {}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// An Object is an unordered collection of key-value members. Keys are
// fully-decoded strings. A key repeated in the source replaces the earlier
// member during construction, so each key occurs at most once.
type Object map[string]Value

func (Object) isValue() {}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// Len reports the number of members of o.
func (o Object) Len() int { return len(o) }

// Find returns the value of the member of o with the given key, or nil if
// no such member exists.
func (o Object) Find(key string) Value { return o[key] }
