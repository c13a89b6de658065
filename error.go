// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by a [*ParseError] to classify the failure.
// Use errors.Is to match them.
var (
	// ErrSyntax means the input does not match the token or structure
	// expected at the current grammar position.
	ErrSyntax = errors.New("syntax error")

	// ErrBadEscape means a string escape sequence is malformed: a \u span
	// with missing or invalid hex digits, or a decoded value that is not a
	// valid Unicode scalar value.
	ErrBadEscape = errors.New("malformed escape")

	// ErrUnexpectedEOF means a required closing token (quote, bracket, or
	// brace) did not appear before the end of the input.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// ParseError is the concrete type of errors reported by the parser.
type ParseError struct {
	Pos     int    // byte offset into the original input
	Context string // label of the construct being parsed, or ""

	err error
}

// Error satisfies the error interface.
func (p *ParseError) Error() string {
	if p.Context != "" {
		return fmt.Sprintf("at offset %d: %s: %v", p.Pos, p.Context, p.err)
	}
	return fmt.Sprintf("at offset %d: %v", p.Pos, p.err)
}

// Unwrap supports error wrapping.
func (p *ParseError) Unwrap() error { return p.err }
