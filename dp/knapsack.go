// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Package dp holds the dynamic programming kernels. Both keep a rolling
// table instead of the full matrix and fix the direction the table is
// filled in, since that direction decides whether an item can be reused.
package dp

import "github.com/fumi-engineer/rosetta-kernels/lcg"

// Item is one knapsack candidate.
type Item struct {
	Weight, Value int
}

// CapacityFactor scales the item count into the knapsack capacity.
const CapacityFactor = 5

// Items draws n items from a fresh generator: weight in [1, 20] then value
// in [1, 100], two draws per item in that order.
func Items(n int) []Item {
	g := lcg.Default()
	items := make([]Item, n)
	for i := range items {
		items[i].Weight = g.Intn(20) + 1
		items[i].Value = g.Intn(100) + 1
	}
	return items
}

// Knapsack solves 0/1 knapsack for the given capacity with two rows:
// row i+1 is filled from row i in ascending capacity order, so no item is
// taken twice.
func Knapsack(items []Item, capacity int) int64 {
	prev := make([]int64, capacity+1)
	cur := make([]int64, capacity+1)
	for _, it := range items {
		for c := 0; c <= capacity; c++ {
			best := prev[c]
			if it.Weight <= c {
				if take := prev[c-it.Weight] + int64(it.Value); take > best {
					best = take
				}
			}
			cur[c] = best
		}
		prev, cur = cur, prev
	}
	return prev[capacity]
}
