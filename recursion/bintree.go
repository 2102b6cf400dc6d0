// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package recursion

import "github.com/fumi-engineer/rosetta-kernels/checksum"

const (
	// MinTreeDepth is the shallowest depth the binary trees kernel walks.
	MinTreeDepth = 4
	// MaxTreeDepth bounds the requested depth; a tree of depth d holds
	// 2^(d+1)-1 nodes.
	MaxTreeDepth = 30
)

// Node is a binary tree node. Leaves have both children nil.
type Node struct {
	Left, Right *Node
}

// BottomUpTree allocates a perfect tree of the given depth.
func BottomUpTree(depth int) *Node {
	if depth <= 0 {
		return &Node{}
	}
	return &Node{Left: BottomUpTree(depth - 1), Right: BottomUpTree(depth - 1)}
}

// Check counts the nodes of the tree.
func (n *Node) Check() int64 {
	if n.Left == nil {
		return 1
	}
	return 1 + n.Left.Check() + n.Right.Check()
}

// TreesResult is the verification output of BinaryTrees.
type TreesResult struct {
	Stretch   int64
	LongLived int64
	// Total folds iterations*check over every depth walked.
	Total int64
}

// BinaryTrees runs the allocation workload: a stretch tree one deeper than
// the maximum, a long-lived tree kept across the run, and for each depth
// from MinTreeDepth to the maximum in steps of two, 2^(max-d+min) short
// lived trees. The maximum depth is max(MinTreeDepth+2, n).
func BinaryTrees(n int) TreesResult {
	maxDepth := n
	if maxDepth < MinTreeDepth+2 {
		maxDepth = MinTreeDepth + 2
	}

	var r TreesResult
	r.Stretch = BottomUpTree(maxDepth + 1).Check()

	longLived := BottomUpTree(maxDepth)
	for d := MinTreeDepth; d <= maxDepth; d += 2 {
		iterations := 1 << uint(maxDepth-d+MinTreeDepth)
		var check int64
		for i := 0; i < iterations; i++ {
			check += BottomUpTree(d).Check()
		}
		r.Total = checksum.Add(r.Total, check)
	}
	r.LongLived = longLived.Check()
	return r
}
