// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package intmath

import (
	"github.com/fumi-engineer/rosetta-kernels/checksum"
	"github.com/fumi-engineer/rosetta-kernels/lcg"
)

// GCD is Euclid's algorithm by remainder. GCD(0, 0) = 0.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// GCDSum draws n pairs (a, b) from a fresh generator, a first, and folds
// their greatest common divisors.
func GCDSum(n int) int64 {
	g := lcg.Default()
	var sum int64
	for i := 0; i < n; i++ {
		a := int64(g.Next())
		b := int64(g.Next())
		sum = checksum.Add(sum, GCD(a, b))
	}
	return sum
}
