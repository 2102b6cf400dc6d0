// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package intmath

// CollatzSteps returns how many steps x takes to reach 1.
func CollatzSteps(x int64) int64 {
	var steps int64
	for x != 1 {
		if x%2 == 0 {
			x /= 2
		} else {
			x = 3*x + 1
		}
		steps++
	}
	return steps
}

// CollatzResult names the start value with the longest chain.
type CollatzResult struct {
	Start, Steps int64
}

// LongestCollatz scans starts 1..n and returns the smallest start with the
// most steps. n == 0 returns the zero result.
func LongestCollatz(n int) CollatzResult {
	var best CollatzResult
	for s := int64(1); s <= int64(n); s++ {
		steps := CollatzSteps(s)
		if best.Start == 0 || steps > best.Steps {
			best = CollatzResult{Start: s, Steps: steps}
		}
	}
	return best
}
