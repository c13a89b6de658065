// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package escape handles decoding of escaped string bodies.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the body of a quoted string
// literal. The input must have the enclosing double quotation marks already
// removed.
//
// Escape sequences are replaced with their unescaped equivalents. An escape
// of an unrecognized character decodes to that character itself. Unquote
// reports an error for an incomplete escape sequence, for a \u escape whose
// four-digit span contains a non-hex digit, and for a \u escape whose value
// is not a valid Unicode scalar value (an unpaired surrogate).
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	putRune := func(r rune) {
		var buf [6]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		// Decode the rune after the escape to figure out what to substitute.
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)
		switch r {
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			v, err := parseHex(src.SliceTo(4))
			if err != nil {
				return nil, fmt.Errorf("invalid Unicode escape: %w", err)
			} else if !utf8.ValidRune(rune(v)) {
				return nil, fmt.Errorf("escape %04x is not a valid scalar value", v)
			}
			putRune(rune(v))
			src = src.SliceFrom(4)
		default:
			// This covers \" and \\ along with any escape the grammar does
			// not recognize, which decodes to the escaped character itself.
			putRune(r)
		}

		// Look for the next escape sequence, and if one is not found we can
		// blit the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
