// SPDX-License-Identifier: MIT

package kernel

// Index maps a possibly negative index into [0, n).
// Negative indices count from the end (-1 is the last element).
// ok is false when i is outside -n..n-1.
func Index(i, n int) (idx int, ok bool) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}

	return i, true
}

// SliceBounds resolves [start:stop) with negative indices and clamping,
// returning lo <= hi within [0, n]. Reversed ranges come back empty.
func SliceBounds(start, stop, n int) (lo, hi int) {
	lo, hi = clampBound(start, n), clampBound(stop, n)
	if hi < lo {
		hi = lo
	}

	return lo, hi
}

func clampBound(i, n int) int {
	if i < 0 {
		i += n
	}
	switch {
	case i < 0:
		return 0
	case i > n:
		return n
	default:
		return i
	}
}
