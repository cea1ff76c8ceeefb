// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatTuple writes c as "(c0, c1, …)" to f, applying the caller's verb and
// flags to every value. With perLine > 0 the tuple breaks after every perLine
// values using ",\n " instead of ", ".
func FormatTuple(f fmt.State, verb rune, c []float64, perLine int) {
	directive := fmt.FormatString(f, verb)
	_, _ = io.WriteString(f, "(")
	for i, x := range c {
		if i > 0 {
			if perLine > 0 && i%perLine == 0 {
				_, _ = io.WriteString(f, ",\n ")
			} else {
				_, _ = io.WriteString(f, ", ")
			}
		}
		_, _ = fmt.Fprintf(f, directive, x)
	}
	_, _ = io.WriteString(f, ")")
}

// Repr renders name(v0, v1, …) with the shortest round-tripping text per value.
func Repr(name string, vals []float64) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, x := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(')')

	return sb.String()
}
