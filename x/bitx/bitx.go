// Package bitx holds small generic helpers for single-bit register masks.
package bitx

import "golang.org/x/exp/constraints"

// Mask returns a value with only bit n set. n outside the width of T yields 0.
func Mask[T constraints.Unsigned](n int) T {
	if n < 0 {
		return 0
	}
	var one T = 1
	return one << uint(n)
}

// Has reports whether bit n of v is set.
func Has[T constraints.Unsigned](v T, n int) bool {
	m := Mask[T](n)
	return m != 0 && v&m == m
}

// Set returns v with bit n set.
func Set[T constraints.Unsigned](v T, n int) T { return v | Mask[T](n) }

// Clear returns v with bit n cleared.
func Clear[T constraints.Unsigned](v T, n int) T { return v &^ Mask[T](n) }

// Lowest returns the index of the lowest set bit of v, or -1 when v is zero.
func Lowest[T constraints.Unsigned](v T) int {
	if v == 0 {
		return -1
	}
	n := 0
	for v&1 == 0 {
		v >>= 1
		n++
	}
	return n
}
