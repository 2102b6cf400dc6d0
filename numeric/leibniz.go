// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package numeric

// PiLeibniz sums the first n terms of 4 * (1 - 1/3 + 1/5 - ...), adding
// terms in index order.
func PiLeibniz(n int) float64 {
	var sum float64
	sign := 1.0
	for k := 0; k < n; k++ {
		sum += sign / float64(2*k+1)
		sign = -sign
	}
	return 4 * sum
}
