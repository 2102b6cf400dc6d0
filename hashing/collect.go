// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package hashing

import "github.com/fumi-engineer/rosetta-kernels/checksum"

// CollectResult is the output of Collect.
type CollectResult struct {
	Found int64
	Sum   int64
}

// Collect inserts keys 1..n with value 2k, then looks every key up again.
// Found counts lookups that returned the inserted value and Sum folds
// those values into a checksum.
func Collect(n int) CollectResult {
	t := NewTable(n)
	for k := int64(1); k <= int64(n); k++ {
		t.Put(k, 2*k)
	}
	var r CollectResult
	for k := int64(1); k <= int64(n); k++ {
		if v, ok := t.Get(k); ok && v == 2*k {
			r.Found++
			r.Sum = checksum.Add(r.Sum, v)
		}
	}
	return r
}
