// SPDX-License-Identifier: MIT

package kernel

// Predicate compares two components.
type Predicate func(a, b float64) bool

// Component-wise comparison predicates.
func Eq(a, b float64) bool { return a == b }
func Ne(a, b float64) bool { return a != b }
func Lt(a, b float64) bool { return a < b }
func Le(a, b float64) bool { return a <= b }
func Gt(a, b float64) bool { return a > b }
func Ge(a, b float64) bool { return a >= b }

// Compare fills dst[i] = pred(a[i], b[i]).
func Compare(dst []bool, a, b []float64, pred Predicate) {
	for i := range a {
		dst[i] = pred(a[i], b[i])
	}
}
