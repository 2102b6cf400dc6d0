// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package recursion

// MaxFannkuch bounds the permutation length; 12! permutations is already
// minutes of work.
const MaxFannkuch = 12

// FannkuchResult is the verification output of Fannkuch.
type FannkuchResult struct {
	// Checksum adds the flip count of even-indexed permutations and
	// subtracts odd-indexed ones.
	Checksum int64
	MaxFlips int64
}

// Fannkuch walks every permutation of 0..n-1 in the fannkuch-redux order
// and, for each, counts prefix reversals until 0 reaches the front.
func Fannkuch(n int) FannkuchResult {
	var r FannkuchResult
	if n == 0 {
		return r
	}
	perm1 := make([]int, n)
	for i := range perm1 {
		perm1[i] = i
	}
	perm := make([]int, n)
	count := make([]int, n)

	permIndex := 0
	rest := n
	for {
		for ; rest != 1; rest-- {
			count[rest-1] = rest
		}

		copy(perm, perm1)
		var flips int64
		for k := perm[0]; k != 0; k = perm[0] {
			for i, j := 0, k; i < j; i, j = i+1, j-1 {
				perm[i], perm[j] = perm[j], perm[i]
			}
			flips++
		}
		if flips > r.MaxFlips {
			r.MaxFlips = flips
		}
		if permIndex%2 == 0 {
			r.Checksum += flips
		} else {
			r.Checksum -= flips
		}

		// Rotate the first rest+1 elements until a counter has room left.
		for {
			if rest == n {
				return r
			}
			first := perm1[0]
			copy(perm1[:rest], perm1[1:rest+1])
			perm1[rest] = first
			count[rest]--
			if count[rest] > 0 {
				break
			}
			rest++
		}
		permIndex++
	}
}
