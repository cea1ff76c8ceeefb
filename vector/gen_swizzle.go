// SPDX-License-Identifier: MIT

//go:build ignore

// gen_swizzle writes swizzle{2,3,4}d_gen.go: one getter per ordered tuple of
// length 2..4 over the component set, and one setter per tuple whose
// components are all distinct.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

var components = []string{"X", "Y", "Z", "W"}

func main() {
	for _, n := range []int{2, 3, 4} {
		if err := write(n); err != nil {
			log.Fatal(err)
		}
	}
}

func write(n int) error {
	var buf bytes.Buffer
	typ := fmt.Sprintf("Vector%dD", n)
	fmt.Fprintf(&buf, "// Code generated by gen_swizzle.go; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package vector\n")

	var getters, setters int
	for length := 2; length <= 4; length++ {
		for _, tuple := range tuples(n, length) {
			name := swizzleName(tuple)
			fmt.Fprintf(&buf, "\n// %s returns (%s).\n", name, strings.Join(names(tuple), ", "))
			fmt.Fprintf(&buf, "func (v %s) %s() Vector%dD {\n\treturn New%dD(%s)\n}\n",
				typ, name, length, length, strings.Join(reads(tuple), ", "))
			getters++
		}
	}
	for length := 2; length <= n; length++ {
		for _, tuple := range tuples(n, length) {
			if !distinct(tuple) {
				continue
			}
			name := swizzleName(tuple)
			fmt.Fprintf(&buf, "\n// Set%s assigns %s from o (scalar broadcast or %d values).\n",
				name, strings.Join(names(tuple), ", "), length)
			fmt.Fprintf(&buf, "func (v *%s) Set%s(o Operand) error {\n", typ, name)
			fmt.Fprintf(&buf, "\treturn setComponents(v.c[:], v.wrapped, o, opName(name%dD, %q), Context%dD, %s)\n}\n",
				n, "Set"+name, n, strings.Join(indices(tuple), ", "))
			setters++
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", typ, err)
	}
	file := fmt.Sprintf("swizzle%dd_gen.go", n)
	log.Printf("%s: %d getters, %d setters", file, getters, setters)

	return os.WriteFile(file, src, 0o644)
}

// tuples lists every ordered tuple of the given length over [0, n), in
// lexicographic order.
func tuples(n, length int) [][]int {
	if length == 0 {
		return [][]int{nil}
	}
	var out [][]int
	for _, head := range tuples(n, length-1) {
		for i := 0; i < n; i++ {
			t := append(append([]int(nil), head...), i)
			out = append(out, t)
		}
	}

	return out
}

func distinct(t []int) bool {
	seen := map[int]bool{}
	for _, i := range t {
		if seen[i] {
			return false
		}
		seen[i] = true
	}

	return true
}

func swizzleName(t []int) string { return strings.Join(names(t), "") }

func names(t []int) []string {
	out := make([]string, len(t))
	for k, i := range t {
		out[k] = components[i]
	}

	return out
}

func reads(t []int) []string {
	out := make([]string, len(t))
	for k, i := range t {
		out[k] = fmt.Sprintf("v.c[%d]", i)
	}

	return out
}

func indices(t []int) []string {
	out := make([]string, len(t))
	for k, i := range t {
		out[k] = fmt.Sprint(i)
	}

	return out
}
