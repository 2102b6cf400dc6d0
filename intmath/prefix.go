// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package intmath

import "github.com/fumi-engineer/rosetta-kernels/checksum"

// PrefixSums returns the running sums of values, each reduced modulo
// checksum.Modulus.
func PrefixSums(values []int) []int64 {
	out := make([]int64, len(values))
	var acc int64
	for i, v := range values {
		acc = checksum.Add(acc, int64(v))
		out[i] = acc
	}
	return out
}

// PrefixResult is the verification output of the prefix sum kernel: the
// final running sum and the checksum of the whole prefix array.
type PrefixResult struct {
	Last, Checksum int64
}

// SummarizePrefix reduces a prefix array.
func SummarizePrefix(prefix []int64) PrefixResult {
	var r PrefixResult
	if len(prefix) > 0 {
		r.Last = prefix[len(prefix)-1]
	}
	r.Checksum = checksum.Sum(prefix)
	return r
}
