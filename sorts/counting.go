// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package sorts

import "fmt"

// CountingDomain is the fixed key domain [0, CountingDomain) of the
// counting sort kernel.
const CountingDomain = 1000

// Counting sorts a, whose values must lie in [0, domain), by tallying each
// key and rewriting a from the tallies. It returns an error naming the
// first out-of-domain value and leaves a untouched in that case.
func Counting(a []int, domain int) error {
	counts := make([]int, domain)
	for i, v := range a {
		if v < 0 || v >= domain {
			return fmt.Errorf("counting sort: value %d at index %d outside [0, %d)", v, i, domain)
		}
		counts[v]++
	}
	pos := 0
	for v, c := range counts {
		for ; c > 0; c-- {
			a[pos] = v
			pos++
		}
	}
	return nil
}
