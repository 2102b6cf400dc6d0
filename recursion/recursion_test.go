// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package recursion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFib(t *testing.T) {
	want := map[int]int64{0: 0, 1: 1, 2: 1, 10: 55, 20: 6765, 30: 832040}
	for n, v := range want {
		assert.Equal(t, v, Fib(n), "fib(%d)", n)
	}
}

func TestFibMatchesIteration(t *testing.T) {
	a, b := int64(0), int64(1)
	for n := 0; n <= 25; n++ {
		assert.Equal(t, a, Fib(n), "fib(%d)", n)
		a, b = b, a+b
	}
}

func TestAckermann(t *testing.T) {
	assert.Equal(t, int64(1), Ackermann(0, 0))
	assert.Equal(t, int64(3), Ackermann(1, 1))
	assert.Equal(t, int64(7), Ackermann(2, 2))
	for n := int64(0); n <= 6; n++ {
		assert.Equal(t, int64(1)<<(n+3)-3, Ackermann(AckermannM, n), "A(3,%d)", n)
	}
}

func TestNQueens(t *testing.T) {
	want := []int64{1, 1, 0, 0, 2, 10, 4, 40, 92, 352, 724}
	for n, v := range want {
		assert.Equal(t, v, NQueens(n), "n=%d", n)
	}
}

func TestNQueensReentrant(t *testing.T) {
	first := NQueens(8)
	second := NQueens(8)
	assert.Equal(t, int64(92), first)
	assert.Equal(t, first, second)
}

func TestBottomUpTree(t *testing.T) {
	assert.Equal(t, int64(1), BottomUpTree(0).Check())
	assert.Equal(t, int64(7), BottomUpTree(2).Check())
	assert.Equal(t, int64(1)<<11-1, BottomUpTree(10).Check())
}

func TestBinaryTrees(t *testing.T) {
	tests := []struct {
		n    int
		want TreesResult
	}{
		{0, TreesResult{Stretch: 255, LongLived: 127, Total: 4016}},
		{1, TreesResult{Stretch: 255, LongLived: 127, Total: 4016}},
		{6, TreesResult{Stretch: 255, LongLived: 127, Total: 4016}},
		{7, TreesResult{Stretch: 511, LongLived: 255, Total: 8032}},
		{8, TreesResult{Stretch: 1023, LongLived: 511, Total: 24240}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BinaryTrees(tt.n), "n=%d", tt.n)
	}
}

func TestFannkuch(t *testing.T) {
	tests := []struct {
		n    int
		want FannkuchResult
	}{
		{0, FannkuchResult{}},
		{1, FannkuchResult{0, 0}},
		{2, FannkuchResult{-1, 1}},
		{3, FannkuchResult{2, 2}},
		{5, FannkuchResult{11, 7}},
		{7, FannkuchResult{228, 16}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fannkuch(tt.n), "n=%d", tt.n)
	}
}

func BenchmarkFib30(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Fib(30)
	}
}

func BenchmarkAckermann3_8(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Ackermann(AckermannM, 8)
	}
}

func BenchmarkNQueens10(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NQueens(10)
	}
}

func BenchmarkBinaryTrees14(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = BinaryTrees(14)
	}
}

func BenchmarkFannkuch9(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Fannkuch(9)
	}
}
