// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package intmath

import (
	"github.com/fumi-engineer/rosetta-kernels/checksum"
	"github.com/fumi-engineer/rosetta-kernels/lcg"
)

// MatrixValueBound bounds generated matrix entries to [0, MatrixValueBound).
const MatrixValueBound = 100

// Matrices draws the two n x n operands, row-major, A fully before B, from
// one fresh generator.
func Matrices(n int) (a, b []int64) {
	g := lcg.Default()
	a = make([]int64, n*n)
	b = make([]int64, n*n)
	for i := range a {
		a[i] = int64(g.Intn(MatrixValueBound))
	}
	for i := range b {
		b[i] = int64(g.Intn(MatrixValueBound))
	}
	return a, b
}

// Matmul performs naive i-j-p matrix multiplication C = A @ B for
// row-major A [m, k] and B [k, n].
func Matmul(a, b []int64, m, k, n int) []int64 {
	c := make([]int64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum int64
			for p := 0; p < k; p++ {
				sum += a[i*k+p] * b[p*n+j]
			}
			c[i*n+j] = sum
		}
	}
	return c
}

// MatrixChecksum multiplies the generated n x n operands and folds C.
func MatrixChecksum(n int) int64 {
	a, b := Matrices(n)
	return checksum.Sum(Matmul(a, b, n, n, n))
}
