// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Package graph implements the breadth-first traversal kernel over a
// synthetic directed graph.
package graph

import "github.com/fumi-engineer/rosetta-kernels/checksum"

// Unreached marks a node BFS never visited.
const Unreached = -1

// EdgeFormula generates one neighbor per node: (i*Prime + Offset) mod n.
type EdgeFormula struct {
	Prime, Offset int
}

// Formulas are applied in this order to every node. Prime 1 / offset 1
// threads a ring through all nodes, so every graph with n >= 1 is
// connected from node 0.
var Formulas = [...]EdgeFormula{
	{1, 1},
	{3, 5},
	{7, 11},
	{13, 17},
	{31, 23},
}

// Graph is an adjacency list in compressed form: the neighbors of node i
// are Edges[Start[i]:Start[i+1]].
type Graph struct {
	Start []int
	Edges []int
}

// Build generates the synthetic graph on n nodes. Self loops are skipped;
// duplicate edges are kept.
func Build(n int) *Graph {
	g := &Graph{
		Start: make([]int, n+1),
		Edges: make([]int, 0, n*len(Formulas)),
	}
	for i := 0; i < n; i++ {
		g.Start[i] = len(g.Edges)
		for _, f := range Formulas {
			j := (i*f.Prime + f.Offset) % n
			if j != i {
				g.Edges = append(g.Edges, j)
			}
		}
	}
	g.Start[n] = len(g.Edges)
	return g
}

// Nodes returns the node count.
func (g *Graph) Nodes() int { return len(g.Start) - 1 }

// Neighbors returns the out-edges of node i in formula order.
func (g *Graph) Neighbors(i int) []int {
	return g.Edges[g.Start[i]:g.Start[i+1]]
}

// BFS returns the hop distance from source to every node, Unreached for
// nodes it cannot reach. The queue is a slice with a moving head.
func (g *Graph) BFS(source int) []int {
	dist := make([]int, g.Nodes())
	for i := range dist {
		dist[i] = Unreached
	}
	if len(dist) == 0 {
		return dist
	}
	queue := make([]int, 0, len(dist))
	dist[source] = 0
	queue = append(queue, source)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range g.Neighbors(u) {
			if dist[v] == Unreached {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

// Result is the verification output of the BFS kernel.
type Result struct {
	Reached int64
	MaxDist int64
	DistSum int64
}

// Summarize reduces a distance array.
func Summarize(dist []int) Result {
	var r Result
	for _, d := range dist {
		if d == Unreached {
			continue
		}
		r.Reached++
		if int64(d) > r.MaxDist {
			r.MaxDist = int64(d)
		}
		r.DistSum = checksum.Add(r.DistSum, int64(d))
	}
	return r
}

// Traverse builds the graph on n nodes and runs BFS from node 0.
func Traverse(n int) Result {
	return Summarize(Build(n).BFS(0))
}
