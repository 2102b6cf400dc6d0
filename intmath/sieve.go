// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package intmath

// Sieve counts the primes <= limit with the sieve of Eratosthenes. Marking
// starts at i*i.
func Sieve(limit int) int64 {
	if limit < 2 {
		return 0
	}
	composite := make([]bool, limit+1)
	var count int64
	for i := 2; i <= limit; i++ {
		if composite[i] {
			continue
		}
		count++
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return count
}
