// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package kernel

import (
	"sync"

	"github.com/fumi-engineer/rosetta-kernels/checksum"
	"github.com/fumi-engineer/rosetta-kernels/dp"
	"github.com/fumi-engineer/rosetta-kernels/graph"
	"github.com/fumi-engineer/rosetta-kernels/hashing"
	"github.com/fumi-engineer/rosetta-kernels/intmath"
	"github.com/fumi-engineer/rosetta-kernels/lcg"
	"github.com/fumi-engineer/rosetta-kernels/numeric"
	"github.com/fumi-engineer/rosetta-kernels/recursion"
	"github.com/fumi-engineer/rosetta-kernels/sorts"
)

// Size limits for kernels whose derived quantities outgrow N.
const (
	// maxSquareSize keeps N*N inside int32.
	maxSquareSize = 46340
	// maxTableSize keeps the 2N hash table capacity inside int32.
	maxTableSize = 1 << 29
	// maxSpectralSize keeps (i+j)(i+j+1)/2 inside int32 for i, j < N.
	maxSpectralSize = 32767
	// maxKnapsackSize keeps the 5N capacity inside int32.
	maxKnapsackSize = DefaultMaxSize / dp.CapacityFactor
)

func ok(r Result) (Result, error) { return r, nil }

func comparisonSort(name, summary string, sort func([]int)) Kernel {
	return Kernel{
		Name:    name,
		Shape:   ComparisonSort,
		Summary: summary,
		Run: func(n int) (Result, error) {
			a := lcg.Sequence(n)
			sort(a)
			return ok(Summary(checksum.Summarize(a)))
		},
	}
}

// Catalog returns a fresh slice of every kernel in the corpus.
func Catalog() []Kernel {
	return []Kernel{
		comparisonSort("bubble_sort", "bubble sort of N generated values", sorts.Bubble),
		comparisonSort("quicksort", "Lomuto quicksort, last-element pivot", sorts.Quick),
		comparisonSort("mergesort", "stable top-down merge sort", sorts.Merge),
		comparisonSort("heap_sort", "in-place max-heap sort", sorts.Heap),
		{
			Name:    "counting_sort",
			Shape:   NonComparisonSort,
			Summary: "counting sort over the domain [0, 1000)",
			Run: func(n int) (Result, error) {
				a := lcg.Bounded(n, sorts.CountingDomain)
				if err := sorts.Counting(a, sorts.CountingDomain); err != nil {
					return Result{}, err
				}
				return ok(Summary(checksum.Summarize(a)))
			},
		},
		{
			Name:    "collect",
			Shape:   SearchHash,
			MaxSize: maxTableSize,
			Summary: "insert keys 1..N into an open-addressing table and look them up",
			Run: func(n int) (Result, error) {
				r := hashing.Collect(n)
				return ok(Ints(r.Found, r.Sum))
			},
		},
		{
			Name:    "two_sum",
			Shape:   SearchHash,
			MaxSize: maxTableSize,
			Summary: "count pairs summing to N among N values below N",
			Run: func(n int) (Result, error) {
				return ok(Ints(hashing.TwoSum(lcg.Bounded(n, n), n)))
			},
		},
		{
			Name:    "histogram",
			Shape:   SearchHash,
			Summary: "tally N values into 1000 buckets",
			Run: func(n int) (Result, error) {
				r, err := hashing.Histogram(lcg.Bounded(n, hashing.HistogramBuckets), hashing.HistogramBuckets)
				if err != nil {
					return Result{}, err
				}
				return ok(Ints(int64(r.Bucket), r.Count, r.Weighted))
			},
		},
		{
			Name:    "graph_bfs",
			Shape:   GraphTraversal,
			MaxSize: DefaultMaxSize / len(graph.Formulas),
			Summary: "breadth-first search over a synthetic 5-out-degree digraph",
			Run: func(n int) (Result, error) {
				r := graph.Traverse(n)
				return ok(Ints(r.Reached, r.MaxDist, r.DistSum))
			},
		},
		{
			Name:    "knapsack",
			Shape:   DynamicProgramming,
			MaxSize: maxKnapsackSize,
			Summary: "0/1 knapsack of N items, capacity 5N",
			Run: func(n int) (Result, error) {
				return ok(Ints(dp.Knapsack(dp.Items(n), dp.CapacityFactor*n)))
			},
		},
		{
			Name:    "coins",
			Shape:   DynamicProgramming,
			Summary: "ways to make N from coins 1, 5, 10, 25, 50, 100",
			Run: func(n int) (Result, error) {
				return ok(Ints(dp.CoinWays(n, dp.Denominations[:])))
			},
		},
		{
			Name:    "fib",
			Shape:   Recursion,
			MaxSize: recursion.MaxFib,
			Summary: "naive doubly recursive Fibonacci",
			Run: func(n int) (Result, error) {
				return ok(Ints(recursion.Fib(n)))
			},
		},
		{
			Name:    "ackermann",
			Shape:   Recursion,
			MaxSize: recursion.MaxAckermannN,
			Summary: "Ackermann function A(3, N)",
			Run: func(n int) (Result, error) {
				return ok(Ints(recursion.Ackermann(recursion.AckermannM, int64(n))))
			},
		},
		{
			Name:    "nqueens",
			Shape:   Recursion,
			MaxSize: recursion.MaxQueens,
			Summary: "count N-queens solutions by bitmask backtracking",
			Run: func(n int) (Result, error) {
				return ok(Ints(recursion.NQueens(n)))
			},
		},
		{
			Name:    "binary_trees",
			Shape:   Recursion,
			MaxSize: recursion.MaxTreeDepth,
			Summary: "allocate and walk perfect binary trees up to depth max(6, N)",
			Run: func(n int) (Result, error) {
				r := recursion.BinaryTrees(n)
				return ok(Ints(r.Stretch, r.LongLived, r.Total))
			},
		},
		{
			Name:    "fannkuch",
			Shape:   Recursion,
			MaxSize: recursion.MaxFannkuch,
			Summary: "pancake flips over every permutation of N elements",
			Run: func(n int) (Result, error) {
				r := recursion.Fannkuch(n)
				return ok(Ints(r.Checksum, r.MaxFlips))
			},
		},
		{
			Name:    "mandelbrot",
			Shape:   NumericIteration,
			MaxSize: maxSquareSize,
			Summary: "points of an N x N grid inside the Mandelbrot set after 50 iterations",
			Run: func(n int) (Result, error) {
				return ok(Ints(numeric.Mandelbrot(n)))
			},
		},
		{
			Name:      "spectral_norm",
			Shape:     NumericIteration,
			Precision: Rounded,
			MaxSize:   maxSpectralSize,
			Summary:   "spectral norm of an N x N matrix by 10 power-iteration rounds",
			Run: func(n int) (Result, error) {
				return ok(Float(numeric.SpectralNorm(n)))
			},
		},
		{
			Name:      "pi_leibniz",
			Shape:     NumericIteration,
			Precision: Rounded,
			Summary:   "pi from N terms of the Leibniz series",
			Run: func(n int) (Result, error) {
				return ok(Float(numeric.PiLeibniz(n)))
			},
		},
		{
			Name:    "sieve",
			Shape:   IntegerArithmetic,
			Summary: "count primes up to N with the sieve of Eratosthenes",
			Run: func(n int) (Result, error) {
				return ok(Ints(intmath.Sieve(n)))
			},
		},
		{
			Name:    "collatz",
			Shape:   IntegerArithmetic,
			Summary: "longest Collatz chain among starts 1..N",
			Run: func(n int) (Result, error) {
				r := intmath.LongestCollatz(n)
				return ok(Ints(r.Start, r.Steps))
			},
		},
		{
			Name:    "gcd",
			Shape:   IntegerArithmetic,
			Summary: "sum of Euclid GCDs over N generated pairs",
			Run: func(n int) (Result, error) {
				return ok(Ints(intmath.GCDSum(n)))
			},
		},
		{
			Name:    "prefix_sum",
			Shape:   IntegerArithmetic,
			Summary: "running sums of N generated values",
			Run: func(n int) (Result, error) {
				r := intmath.SummarizePrefix(intmath.PrefixSums(lcg.Sequence(n)))
				return ok(Ints(r.Last, r.Checksum))
			},
		},
		{
			Name:    "matrix_mult",
			Shape:   IntegerArithmetic,
			MaxSize: maxSquareSize,
			Summary: "naive N x N integer matrix product",
			Run: func(n int) (Result, error) {
				return ok(Ints(intmath.MatrixChecksum(n)))
			},
		},
	}
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the registry over Catalog. It is built once and shared;
// a Registry is immutable.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(Catalog()...)
		if err != nil {
			panic(err)
		}
		defaultReg = r
	})
	return defaultReg
}
