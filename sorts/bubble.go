// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package sorts

// Bubble sorts a with adjacent swaps, shrinking the unsorted tail by one
// each pass. There is no early exit on a pass without swaps.
func Bubble(a []int) {
	n := len(a)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
			}
		}
	}
}
