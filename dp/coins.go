// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package dp

import "github.com/fumi-engineer/rosetta-kernels/checksum"

// Denominations are the coin values, ascending.
var Denominations = [...]int{1, 5, 10, 25, 50, 100}

// CoinWays counts the multisets of coins summing to amount, modulo
// checksum.Modulus. Coins form the outer loop and amounts ascend in the
// inner loop over a single row, which counts combinations rather than
// orderings.
func CoinWays(amount int, coins []int) int64 {
	ways := make([]int64, amount+1)
	ways[0] = 1
	for _, c := range coins {
		for a := c; a <= amount; a++ {
			ways[a] = checksum.Add(ways[a], ways[a-c])
		}
	}
	return ways[amount]
}
