// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package sorts

// Merge sorts a with a stable top-down merge sort. One scratch buffer of
// len(a) is allocated up front and shared by every level.
func Merge(a []int) {
	if len(a) < 2 {
		return
	}
	buf := make([]int, len(a))
	mergeSort(a, buf, 0, len(a))
}

// mergeSort sorts a[lo:hi].
func mergeSort(a, buf []int, lo, hi int) {
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(a, buf, lo, mid)
	mergeSort(a, buf, mid, hi)

	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		// <= keeps equal keys in input order.
		if a[i] <= a[j] {
			buf[k] = a[i]
			i++
		} else {
			buf[k] = a[j]
			j++
		}
		k++
	}
	k += copy(buf[k:], a[i:mid])
	copy(buf[k:], a[j:hi])
	copy(a[lo:hi], buf[lo:hi])
}
