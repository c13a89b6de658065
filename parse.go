// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/creachadair/jparse/internal/escape"

	"go4.org/mem"
)

// Parse parses a single value from the front of input. Leading and trailing
// whitespace around the value is consumed, and the unconsumed suffix of the
// input is returned alongside the value. Parse does not require that the
// suffix be empty; use [ParseSingle] to insist on a complete document.
//
// In case of error, the returned error has concrete type [*ParseError] and
// no value is produced.
func Parse(input string) (Value, string, error) {
	p := &parser{input: input}
	return p.parseValue(input)
}

// ParseSingle parses input as a single complete value. It reports an error
// if anything besides whitespace remains after the value.
func ParseSingle(input string) (Value, error) {
	v, rest, err := Parse(input)
	if err != nil {
		return nil, err
	} else if rest != "" {
		return nil, &ParseError{
			Pos: len(input) - len(rest),
			err: fmt.Errorf("%w: %d bytes of unconsumed input", ErrSyntax, len(rest)),
		}
	}
	return v, nil
}

// MustParse parses input as a single complete value, as [ParseSingle], and
// panics if parsing fails. Use this for static documents where an error
// means the program itself is wrong.
func MustParse(input string) Value {
	v, err := ParseSingle(input)
	if err != nil {
		panic("jparse: " + err.Error())
	}
	return v
}

// A parser carries the original input so that failures can report their
// byte offset. Each sub-parser takes the current suffix of the input and
// returns the suffix remaining after its match.
type parser struct {
	input string
}

func (p *parser) offset(rest string) int { return len(p.input) - len(rest) }

func (p *parser) failf(rest, label string, kind error, msg string, args ...any) error {
	return &ParseError{
		Pos:     p.offset(rest),
		Context: label,
		err:     fmt.Errorf("%w: %s", kind, fmt.Sprintf(msg, args...)),
	}
}

// parseValue consumes a value along with the whitespace around it.
// All recursive positions in the grammar (array elements, object member
// values, the whole document) parse through here, so whitespace is legal
// on both sides of any value, however deeply nested.
func (p *parser) parseValue(s string) (Value, string, error) {
	v, rest, err := p.parseBare(skipSpace(s))
	if err != nil {
		return nil, s, err
	}
	return v, skipSpace(rest), nil
}

// parseBare dispatches on the first character of s to one of the six value
// alternatives. The discriminating characters are mutually exclusive, so an
// alternative that fails past its first character propagates that failure;
// no other alternative is retried.
func (p *parser) parseBare(s string) (Value, string, error) {
	if s == "" {
		return nil, s, p.failf(s, "value", ErrUnexpectedEOF, "missing value")
	}
	switch s[0] {
	case 'n':
		if strings.HasPrefix(s, "null") {
			return Null{}, s[len("null"):], nil
		}
	case 't':
		if strings.HasPrefix(s, "true") {
			return Bool(true), s[len("true"):], nil
		}
	case 'f':
		if strings.HasPrefix(s, "false") {
			return Bool(false), s[len("false"):], nil
		}
	case '"':
		v, rest, err := p.parseString(s)
		if err != nil {
			return nil, s, err
		}
		return v, rest, nil
	case '[':
		return p.parseArray(s)
	case '{':
		return p.parseObject(s)
	default:
		return p.parseNumber(s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return nil, s, p.failf(s, "value", ErrSyntax, "unexpected %q", r)
}

// parseNumber consumes the longest prefix of s matching a decimal
// floating-point literal: an optional sign, digits with an optional
// fraction (or a bare fraction), and an optional exponent. The exponent is
// consumed only if it is complete, so "1e" yields 1 with suffix "e".
func (p *parser) parseNumber(s string) (Value, string, error) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	mant := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if i == mant && j == i+1 {
			// Neither integer digits nor fraction digits.
			return nil, s, p.numberErr(s)
		}
		i = j
	} else if i == mant {
		return nil, s, p.numberErr(s)
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	v, err := strconv.ParseFloat(s[:i], 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, s, p.failf(s, "value", ErrSyntax, "invalid number %q", s[:i])
	}
	return Number(v), s[i:], nil
}

func (p *parser) numberErr(s string) error {
	r, _ := utf8.DecodeRuneInString(s)
	return p.failf(s, "value", ErrSyntax, "unexpected %q", r)
}

// parseString consumes a quoted string literal from the front of s and
// returns its decoded contents. The closing quote is consumed but not
// included in the result.
// Precondition: s begins with '"'.
func (p *parser) parseString(s string) (String, string, error) {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '"':
			dec, err := escape.Unquote(mem.S(s[1:i]))
			if err != nil {
				return "", s, p.failf(s, "string", ErrBadEscape, "%v", err)
			}
			return String(dec), s[i+1:], nil
		case '\\':
			i++ // the escaped character cannot close the string
		}
	}
	return "", s, p.failf(s, "string", ErrUnexpectedEOF, "missing closing quote")
}

// parseArray consumes a bracketed, comma-separated sequence of values.
// Precondition: s begins with '['.
func (p *parser) parseArray(s string) (Value, string, error) {
	s = skipSpace(s[1:])
	out := Array{}
	if strings.HasPrefix(s, "]") {
		return out, s[1:], nil
	}
	for {
		v, rest, err := p.parseValue(s)
		if err != nil {
			return nil, s, err
		}
		out = append(out, v)
		s = rest

		if s == "" {
			return nil, s, p.failf(s, "array", ErrUnexpectedEOF, `missing "]"`)
		}
		switch s[0] {
		case ',':
			s = s[1:]
		case ']':
			return out, s[1:], nil
		default:
			r, _ := utf8.DecodeRuneInString(s)
			return nil, s, p.failf(s, "array", ErrSyntax, `got %q, want "," or "]"`, r)
		}
	}
}

// parseObject consumes a braced, comma-separated sequence of key:value
// members. A repeated key silently replaces the earlier member.
// Precondition: s begins with '{'.
func (p *parser) parseObject(s string) (Value, string, error) {
	s = skipSpace(s[1:])
	out := Object{}
	if strings.HasPrefix(s, "}") {
		return out, s[1:], nil
	}
	for {
		rest, err := p.parseMember(s, out)
		if err != nil {
			return nil, s, err
		}
		s = rest

		if s == "" {
			return nil, s, p.failf(s, "object", ErrUnexpectedEOF, `missing "}"`)
		}
		switch s[0] {
		case ',':
			s = skipSpace(s[1:])
		case '}':
			return out, s[1:], nil
		default:
			r, _ := utf8.DecodeRuneInString(s)
			return nil, s, p.failf(s, "object", ErrSyntax, `got %q, want "," or "}"`, r)
		}
	}
}

// parseMember consumes a single "key": value member and stores it into out.
// A member parses atomically: if either the key or the value fails, the
// failure propagates and out gains no entry for the pair.
func (p *parser) parseMember(s string, out Object) (string, error) {
	if s == "" {
		return s, p.failf(s, "object item", ErrUnexpectedEOF, "missing key")
	} else if s[0] != '"' {
		r, _ := utf8.DecodeRuneInString(s)
		return s, p.failf(s, "object item", ErrSyntax, "got %q, want string key", r)
	}
	key, rest, err := p.parseString(s)
	if err != nil {
		return s, err
	}
	s = skipSpace(rest)

	if s == "" {
		return s, p.failf(s, "object item", ErrUnexpectedEOF, `missing ":"`)
	} else if s[0] != ':' {
		r, _ := utf8.DecodeRuneInString(s)
		return s, p.failf(s, "object item", ErrSyntax, `got %q, want ":"`, r)
	}
	v, rest, err := p.parseValue(s[1:])
	if err != nil {
		return s, err
	}
	out[string(key)] = v
	return rest, nil
}

// skipSpace returns s with its maximal leading run of whitespace removed.
func skipSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
