// Package utils implements various helper functions.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Max returns the maximum value of the input.
func Max[V constraints.Ordered](a, b V) (r V) {
	if a > b {
		return a
	}
	return b
}

// Count returns the number of elements of s equal to x.
func Count[V comparable](s []V, x V) (n int) {
	for i := range s {
		if s[i] == x {
			n++
		}
	}
	return
}
