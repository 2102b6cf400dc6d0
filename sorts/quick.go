// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package sorts

// Quick sorts a with recursive quicksort over a Lomuto partition.
func Quick(a []int) {
	quick(a, 0, len(a)-1)
}

func quick(a []int, lo, hi int) {
	if lo >= hi {
		return
	}
	p := partition(a, lo, hi)
	quick(a, lo, p-1)
	quick(a, p+1, hi)
}

// partition uses a[hi] as the pivot and returns its final index.
// Elements equal to the pivot go left.
func partition(a []int, lo, hi int) int {
	pivot := a[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		if a[j] <= pivot {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}
	a[i+1], a[hi] = a[hi], a[i+1]
	return i + 1
}
