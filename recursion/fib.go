// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package recursion

// MaxFib is the largest n whose Fibonacci number fits an int64.
const MaxFib = 92

// Fib returns the n-th Fibonacci number by the doubly recursive
// definition. fib(0) = 0, fib(1) = 1.
func Fib(n int) int64 {
	if n < 2 {
		return int64(n)
	}
	return Fib(n-1) + Fib(n-2)
}
