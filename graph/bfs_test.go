// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBuildSkipsSelfLoops(t *testing.T) {
	g := Build(1)
	assert.Equal(t, 1, g.Nodes())
	assert.Empty(t, g.Neighbors(0))

	g = Build(10)
	for i := 0; i < g.Nodes(); i++ {
		for _, j := range g.Neighbors(i) {
			require.NotEqual(t, i, j)
			require.GreaterOrEqual(t, j, 0)
			require.Less(t, j, 10)
		}
	}
}

func TestBuildFormulaOrder(t *testing.T) {
	g := Build(10)
	// Node 2: 3, 11%10=1, 25%10=5, 43%10=3, 85%10=5.
	assert.Equal(t, []int{3, 1, 5, 3, 5}, g.Neighbors(2))
}

func TestBFSDistances(t *testing.T) {
	dist := Build(5).BFS(0)
	assert.Equal(t, 0, dist[0])
	for i, d := range dist {
		assert.NotEqual(t, Unreached, d, "node %d", i)
	}
}

func TestBFSUnreached(t *testing.T) {
	// Only 0 -> 1; node 2 has no in-edges.
	g := &Graph{Start: []int{0, 1, 1, 1}, Edges: []int{1}}
	assert.Equal(t, []int{0, 1, Unreached}, g.BFS(0))
	assert.Equal(t, Result{Reached: 2, MaxDist: 1, DistSum: 1}, Summarize(g.BFS(0)))
}

func TestTraverseReference(t *testing.T) {
	tests := []struct {
		n    int
		want Result
	}{
		{0, Result{}},
		{1, Result{1, 0, 0}},
		{2, Result{2, 1, 1}},
		{5, Result{5, 2, 5}},
		{10, Result{10, 3, 15}},
		{100, Result{100, 5, 302}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Traverse(tt.n), "n=%d", tt.n)
	}
}

func TestTraverseDeterministic(t *testing.T) {
	assert.Equal(t, Traverse(5000), Traverse(5000))
}

func BenchmarkTraverse100000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Traverse(100000)
	}
}
