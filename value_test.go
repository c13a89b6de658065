// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jparse_test

import (
	"testing"

	"github.com/creachadair/jparse"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		value jparse.Value
		want  string
	}{
		{jparse.Null{}, "null"},
		{jparse.Bool(true), "true"},
		{jparse.Bool(false), "false"},
		{jparse.Number(0), "0"},
		{jparse.Number(-1.5), "-1.5"},
		{jparse.Number(5e+9), "5e+09"},
		{jparse.String("a\tb"), `"a\tb"`},
		{jparse.Array{}, "Array(len=0)"},
		{jparse.Array{jparse.Null{}, jparse.Bool(true)}, "Array(len=2)"},
		{jparse.Object{}, "Object(len=0)"},
		{jparse.Object{"a": jparse.Number(1)}, "Object(len=1)"},
	}
	for _, tc := range tests {
		if got := tc.value.String(); got != tc.want {
			t.Errorf("(%T).String: got %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestObjectFind(t *testing.T) {
	o := jparse.MustParse(`{"a": 1, "b": null}`).(jparse.Object)
	if got := o.Find("a"); got != jparse.Number(1) {
		t.Errorf("Find(a): got %v, want 1", got)
	}
	if got := o.Find("b"); got != (jparse.Null{}) {
		t.Errorf("Find(b): got %v, want null", got)
	}
	if got := o.Find("nonesuch"); got != nil {
		t.Errorf("Find(nonesuch): got %v, want nil", got)
	}
}
