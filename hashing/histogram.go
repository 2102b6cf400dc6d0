// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package hashing

import (
	"fmt"

	"github.com/fumi-engineer/rosetta-kernels/checksum"
)

// HistogramBuckets is the bucket domain of the histogram kernel.
const HistogramBuckets = 1000

// HistogramResult summarizes a bucket count.
type HistogramResult struct {
	// Bucket is the lowest-index bucket holding the maximum count.
	Bucket int
	Count  int64
	// Weighted folds count[b]*(b+1) over all buckets, so moving a value
	// between buckets changes it.
	Weighted int64
}

// Histogram tallies values into buckets [0, buckets).
func Histogram(values []int, buckets int) (HistogramResult, error) {
	counts := make([]int64, buckets)
	for i, v := range values {
		if v < 0 || v >= buckets {
			return HistogramResult{}, fmt.Errorf("histogram: value %d at index %d outside [0, %d)", v, i, buckets)
		}
		counts[v]++
	}
	var r HistogramResult
	for b, c := range counts {
		if c > counts[r.Bucket] {
			r.Bucket = b
		}
		r.Weighted = checksum.Add(r.Weighted, c*int64(b+1))
	}
	if buckets > 0 {
		r.Count = counts[r.Bucket]
	}
	return r, nil
}
