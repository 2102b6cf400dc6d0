// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package sorts

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/fumi-engineer/rosetta-kernels/checksum"
	"github.com/fumi-engineer/rosetta-kernels/lcg"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var comparisonSorts = []struct {
	name string
	sort func([]int)
}{
	{"bubble", Bubble},
	{"quick", Quick},
	{"merge", Merge},
	{"heap", Heap},
}

// =============================================================================
// Cross-implementation agreement
// =============================================================================

// Every comparison sort must yield the same (first, last, sum) triple as
// every other one, and as the reference values computed independently.
func TestComparisonSortsAgree(t *testing.T) {
	want := map[int]string{
		0:   "0 0 0",
		1:   "19081 19081 19081",
		2:   "17033 19081 36114",
		5:   "13856 25461 90700",
		10:  "1093 26500 175460",
		100: "186 31630 1526107",
	}
	for n, summary := range want {
		for _, s := range comparisonSorts {
			a := lcg.Sequence(n)
			s.sort(a)
			require.True(t, checksum.IsSorted(a), "%s n=%d not sorted", s.name, n)
			assert.Equal(t, summary, checksum.Summarize(a).String(), "%s n=%d", s.name, n)
		}
	}
}

func TestComparisonSortsMatchSlicesSort(t *testing.T) {
	for _, s := range comparisonSorts {
		t.Run(s.name, func(t *testing.T) {
			for _, n := range []int{0, 1, 2, 3, 17, 256, 1000} {
				got := lcg.Sequence(n)
				want := slices.Clone(got)
				slices.Sort(want)
				s.sort(got)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("n=%d mismatch (-want +got):\n%s", n, diff)
				}
			}
		})
	}
}

func TestComparisonSortsEdgeShapes(t *testing.T) {
	inputs := map[string][]int{
		"sorted":     {1, 2, 3, 4, 5, 6},
		"reversed":   {6, 5, 4, 3, 2, 1},
		"all equal":  {7, 7, 7, 7},
		"duplicates": {3, 1, 3, 1, 2, 2},
		"negatives":  {0, -3, 5, -1},
	}
	for name, in := range inputs {
		want := slices.Clone(in)
		slices.Sort(want)
		for _, s := range comparisonSorts {
			got := slices.Clone(in)
			s.sort(got)
			assert.Equal(t, want, got, "%s/%s", s.name, name)
		}
	}
}

// =============================================================================
// Scheme-specific behavior
// =============================================================================

func TestPartitionLomuto(t *testing.T) {
	a := []int{3, 8, 1, 9, 5}
	p := partition(a, 0, len(a)-1)
	assert.Equal(t, 2, p)
	assert.Equal(t, []int{3, 1, 5, 9, 8}, a)
}

func TestHeapSiftDown(t *testing.T) {
	a := []int{1, 5, 3}
	siftDown(a, 0, len(a))
	assert.Equal(t, []int{5, 1, 3}, a)
}

// =============================================================================
// Counting sort
// =============================================================================

func TestCountingReferenceN10(t *testing.T) {
	a := lcg.Bounded(10, CountingDomain)
	require.NoError(t, Counting(a, CountingDomain))
	assert.Equal(t, []int{33, 65, 81, 93, 269, 425, 461, 500, 677, 856}, a)

	s := checksum.Summarize(a)
	assert.LessOrEqual(t, s.First, s.Last)
	assert.Equal(t, "33 856 3460", s.String())
}

func TestCountingMatchesComparisonSorts(t *testing.T) {
	a := lcg.Bounded(5000, CountingDomain)
	b := slices.Clone(a)
	require.NoError(t, Counting(a, CountingDomain))
	Heap(b)
	assert.Equal(t, b, a)
}

func TestCountingRejectsOutOfDomain(t *testing.T) {
	a := []int{1, 2, 1000}
	err := Counting(a, CountingDomain)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value 1000 at index 2")
	assert.Equal(t, []int{1, 2, 1000}, a)

	require.Error(t, Counting([]int{-1}, CountingDomain))
}

func TestCountingEmpty(t *testing.T) {
	a := []int{}
	require.NoError(t, Counting(a, CountingDomain))
	assert.Equal(t, "0 0 0", checksum.Summarize(a).String())
}
