// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Package sorts holds the comparison and non-comparison sort kernels.
//
// Every sort works in place on a []int and ascends. The algorithms are the
// textbook ones with their schemes pinned down (Lomuto partition with the
// last element as pivot, top-down stable merge, sift-down heap) so the
// number of comparisons and the recursion depth match ports in other
// languages. None of them call into package sort.
package sorts
