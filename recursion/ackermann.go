// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package recursion

// AckermannM is the fixed first argument of the Ackermann kernel.
const AckermannM = 3

// MaxAckermannN keeps A(3, n) = 2^(n+3) - 3 inside int64.
const MaxAckermannN = 60

// Ackermann evaluates the two-argument Ackermann-Peter function by its
// recursive definition.
func Ackermann(m, n int64) int64 {
	if m == 0 {
		return n + 1
	}
	if n == 0 {
		return Ackermann(m-1, 1)
	}
	return Ackermann(m-1, Ackermann(m, n-1))
}
