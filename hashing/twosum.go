// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package hashing

// TwoSum counts index pairs i < j with values[i]+values[j] == target in a
// single pass: each value first looks up how many earlier values complete
// it, then records itself. The table is a multiset (key -> multiplicity),
// so duplicates are counted exactly like a double loop would.
func TwoSum(values []int, target int) int64 {
	seen := NewTable(len(values))
	var pairs int64
	for _, v := range values {
		if c, ok := seen.Get(int64(target - v)); ok {
			pairs += c
		}
		seen.Add(int64(v), 1)
	}
	return pairs
}
