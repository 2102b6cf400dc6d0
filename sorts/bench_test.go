// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package sorts

import (
	"testing"

	"github.com/fumi-engineer/rosetta-kernels/lcg"
)

func benchSort(b *testing.B, n int, sort func([]int)) {
	input := lcg.Sequence(n)
	work := make([]int, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, input)
		sort(work)
	}
}

func BenchmarkBubble1000(b *testing.B) { benchSort(b, 1000, Bubble) }
func BenchmarkBubble5000(b *testing.B) { benchSort(b, 5000, Bubble) }

func BenchmarkQuick10000(b *testing.B)  { benchSort(b, 10000, Quick) }
func BenchmarkQuick100000(b *testing.B) { benchSort(b, 100000, Quick) }

func BenchmarkMerge10000(b *testing.B)  { benchSort(b, 10000, Merge) }
func BenchmarkMerge100000(b *testing.B) { benchSort(b, 100000, Merge) }

func BenchmarkHeap10000(b *testing.B)  { benchSort(b, 10000, Heap) }
func BenchmarkHeap100000(b *testing.B) { benchSort(b, 100000, Heap) }

func BenchmarkCounting100000(b *testing.B) {
	input := lcg.Bounded(100000, CountingDomain)
	work := make([]int, len(input))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, input)
		if err := Counting(work, CountingDomain); err != nil {
			b.Fatal(err)
		}
	}
}
