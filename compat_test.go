// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jparse_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/creachadair/jparse"
	"github.com/creachadair/jparse/internal/testutil"
	gojson "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/tailscale/hujson"
)

// checkCompat verifies that input parses to the same tree as an independent
// JSON decoder produces, modulo numeric width.
func checkCompat(t *testing.T, input string) {
	t.Helper()

	v, err := jparse.ParseSingle(input)
	if err != nil {
		t.Errorf("ParseSingle(%#q): unexpected error: %v", input, err)
		return
	}
	var want any
	if err := gojson.Unmarshal([]byte(input), &want); err != nil {
		t.Fatalf("Unmarshal(%#q): %v", input, err)
	}
	if diff := cmp.Diff(testutil.Normalize(want), testutil.ToAny(v)); diff != "" {
		t.Errorf("Input: %#q\nTrees differ (-decoder, +parser):\n%s", input, diff)
	}
}

func TestDecodeCompat(t *testing.T) {
	// Numeric literals here are exact in binary or are small integers, so
	// narrowing the reference decoder's float64 to float32 is lossless.
	tests := []string{
		`null`, `true`, `false`, `0`, `-1.5`, `120625`, `2.5e3`,
		`""`, `"hello"`, `"tab\tnewline\nquote\" backslash\\"`,
		`"&é "`,
		`[]`, `[1, 2, 3]`, `[[["deep"]], {}]`,
		`{}`, `{"a": 1}`,
		`{ "abc" : "def", "foo": ["bar", 123] }`,
		`{"x": [1, 2, {"y": null}], "b": {"t": true, "f": false}}`,
	}
	for _, input := range tests {
		checkCompat(t, input)
	}
}

// fakeDocument generates a deterministic document of realistic records.
// Its numbers are integers well inside float32's exact range.
func fakeDocument(tb testing.TB) string {
	tb.Helper()

	fake := gofakeit.New(20240814)
	data, err := fake.JSON(&gofakeit.JSONOptions{
		Type:     "array",
		RowCount: 500,
		Fields: []gofakeit.Field{
			{Name: "id", Function: "number", Params: gofakeit.MapParams{"min": {"1"}, "max": {"1000000"}}},
			{Name: "name", Function: "name"},
			{Name: "email", Function: "email"},
			{Name: "quote", Function: "sentence", Params: gofakeit.MapParams{"wordcount": {"12"}}},
			{Name: "enabled", Function: "bool"},
		},
		Indent: true,
	})
	if err != nil {
		tb.Fatalf("Generating document: %v", err)
	}
	return string(data)
}

func TestGeneratedCompat(t *testing.T) {
	checkCompat(t, fakeDocument(t))
}

// Standardizing a commented document replaces its comments and trailing
// commas with whitespace, which this grammar must accept anywhere between
// tokens.
func TestStandardizedInput(t *testing.T) {
	const commented = `{
  // Primary servers, in priority order.
  "servers": [
    {"host": "a.example.com", "port": 8080},
    {"host": "b.example.com", "port": 8081}, /* note the trailing comma */
  ],
  "retry": true,
}`
	std, err := hujson.Standardize([]byte(commented))
	if err != nil {
		t.Fatalf("Standardize: %v", err)
	}
	v, err := jparse.ParseSingle(string(std))
	if err != nil {
		t.Fatalf("ParseSingle: unexpected error: %v", err)
	}

	if got, err := jparse.Path(v, "servers", 1, "port"); err != nil {
		t.Errorf("Path(servers/1/port): %v", err)
	} else if got != jparse.Number(8081) {
		t.Errorf("Path(servers/1/port): got %v, want 8081", got)
	}
	if got, err := jparse.Path(v, "retry"); err != nil {
		t.Errorf("Path(retry): %v", err)
	} else if got != jparse.Bool(true) {
		t.Errorf("Path(retry): got %v, want true", got)
	}
}
