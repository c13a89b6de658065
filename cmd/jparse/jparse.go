// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Program jparse parses a JSON-like text document and prints the resulting
// tree in an indented debug form.
//
// Usage:
//
//	jparse input.json
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/creachadair/jparse"
)

func main() {
	flag.Parse()

	data, err := readInput()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: jparse <file-path>")
		os.Exit(2)
	}
	v, err := jparse.ParseSingle(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(render(v))
}

func readInput() (string, error) {
	if flag.NArg() != 1 {
		return "", fmt.Errorf("got %d arguments, want a file path", flag.NArg())
	}
	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// render formats v as an indented tree, one element or member per line.
// Object members print in sorted key order so the output is stable.
func render(v jparse.Value) string {
	var sb strings.Builder
	dump(&sb, v, "")
	return sb.String()
}

func dump(sb *strings.Builder, v jparse.Value, indent string) {
	switch t := v.(type) {
	case jparse.Array:
		if len(t) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		for _, elt := range t {
			sb.WriteString(indent + "  ")
			dump(sb, elt, indent+"  ")
			sb.WriteString(",\n")
		}
		sb.WriteString(indent + "]")
	case jparse.Object:
		if len(t) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{\n")
		for _, key := range slices.Sorted(maps.Keys(t)) {
			fmt.Fprintf(sb, "%s  %q: ", indent, key)
			dump(sb, t[key], indent+"  ")
			sb.WriteString(",\n")
		}
		sb.WriteString(indent + "}")
	default:
		sb.WriteString(v.String())
	}
}
