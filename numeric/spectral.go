// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package numeric

import "math"

// SpectralRounds is the number of u -> AtA -> v -> AtA -> u rounds.
const SpectralRounds = 10

// a is the implicit infinite matrix A(i,j) = 1 / ((i+j)(i+j+1)/2 + i + 1).
func a(i, j int) float64 {
	return 1.0 / float64((i+j)*(i+j+1)/2+i+1)
}

func mulAv(v, out []float64) {
	for i := range out {
		var sum float64
		for j := range v {
			sum += float64(a(i, j) * v[j])
		}
		out[i] = sum
	}
}

func mulAtv(v, out []float64) {
	for i := range out {
		var sum float64
		for j := range v {
			sum += float64(a(j, i) * v[j])
		}
		out[i] = sum
	}
}

func mulAtAv(v, out, tmp []float64) {
	mulAv(v, tmp)
	mulAtv(tmp, out)
}

// SpectralNorm approximates the spectral norm of the n x n leading block of
// A by power iteration. n == 0 returns 0.
func SpectralNorm(n int) float64 {
	if n == 0 {
		return 0
	}
	u := make([]float64, n)
	v := make([]float64, n)
	tmp := make([]float64, n)
	for i := range u {
		u[i] = 1
	}
	for r := 0; r < SpectralRounds; r++ {
		mulAtAv(u, v, tmp)
		mulAtAv(v, u, tmp)
	}
	var vBv, vv float64
	for i := range v {
		vBv += float64(u[i] * v[i])
		vv += float64(v[i] * v[i])
	}
	return math.Sqrt(vBv / vv)
}
