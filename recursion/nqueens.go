// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package recursion

// MaxQueens bounds the board width to what the bitmask search handles.
const MaxQueens = 32

// NQueens counts placements of n non-attacking queens on an n x n board.
// The empty board (n = 0) has exactly one placement.
func NQueens(n int) int64 {
	if n == 0 {
		return 1
	}
	full := uint64(1)<<uint(n) - 1
	return placeRow(full, 0, 0, 0)
}

// placeRow fills the next row. cols, left and right mark squares attacked
// along columns and the two diagonals, already shifted for this row.
func placeRow(full, cols, left, right uint64) int64 {
	if cols == full {
		return 1
	}
	var count int64
	free := full &^ (cols | left | right)
	for free != 0 {
		bit := free & -free
		free ^= bit
		count += placeRow(full, cols|bit, (left|bit)<<1&full, (right|bit)>>1)
	}
	return count
}
