// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"errors"
	"strings"

	"github.com/creachadair/jparse/internal/escape"

	"go4.org/mem"
)

// Unquote decodes a complete quoted string literal. The enclosing double
// quotation marks are removed, and escape sequences are replaced with their
// unescaped equivalents.
//
// Unquote reports an error if the quotation marks are missing, if an escape
// sequence is incomplete, or if a \u escape is malformed. An escape of an
// unrecognized character decodes to that character itself.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	dec, err := escape.Unquote(mem.S(src[1 : len(src)-1]))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
