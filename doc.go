// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package jparse implements a positional parser for JSON-like text.
//
// # Parsing
//
// The Parse function consumes a single value from the front of its input
// and returns the value along with the unconsumed suffix of the input:
//
//	v, rest, err := jparse.Parse(`{"a": [1, 2]} trailing`)
//
// Parse does not require that the whole input be consumed; callers that
// expect a complete document should use ParseSingle, which reports an error
// if anything besides whitespace remains:
//
//	v, err := jparse.ParseSingle(input)
//
// In case of error, the returned error has concrete type [*ParseError],
// which records the byte offset of the failure, a label for the grammar
// construct being parsed, and one of the sentinel values [ErrSyntax],
// [ErrBadEscape], or [ErrUnexpectedEOF] reachable via errors.Is.
//
// # Values
//
// A parsed tree is a [Value], a closed union of six kinds: [Null], [Bool],
// [Number], [String], [Array], and [Object]. Numbers are float32; the
// grammar has a single numeric kind with no separate integers. An Object
// is an unordered map, and a duplicate key in the input silently replaces
// the earlier entry.
//
// Trees are self-contained: no value retains a reference to the input
// text, and arrays and objects exclusively own their children.
//
// # Grammar notes
//
// The grammar is JSON with the following deliberate differences:
//
//   - Whitespace (space, tab, CR, LF) is permitted between any two tokens,
//     including before closing brackets and inside empty containers.
//   - Literals match as prefixes, so "nullx" parses as null with suffix "x".
//   - An unrecognized simple escape such as \q decodes to the escaped
//     character itself; only \uXXXX escapes can be malformed.
//   - Unescaped control characters are permitted inside strings.
//   - Numbers admit a leading "+" and forms like "1." and ".5".
//
// Comments, unquoted keys, and trailing commas are not part of the grammar
// and are reported as syntax errors.
package jparse
