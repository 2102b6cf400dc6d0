// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package numeric

// MandelbrotIterations is the escape-test iteration budget per point.
const MandelbrotIterations = 50

// Mandelbrot samples an n x n grid over [-1.5, 0.5) x [-1, 1) and counts the
// points that stay within radius 2 for MandelbrotIterations steps.
func Mandelbrot(n int) int64 {
	var inside int64
	for y := 0; y < n; y++ {
		ci := 2.0*float64(y)/float64(n) - 1.0
		for x := 0; x < n; x++ {
			cr := 2.0*float64(x)/float64(n) - 1.5
			if bounded(cr, ci) {
				inside++
			}
		}
	}
	return inside
}

func bounded(cr, ci float64) bool {
	var zr, zi float64
	for i := 0; i < MandelbrotIterations; i++ {
		zr2 := float64(zr * zr)
		zi2 := float64(zi * zi)
		if zr2+zi2 > 4.0 {
			return false
		}
		zi = float64(2.0*zr*zi) + ci
		zr = zr2 - zi2 + cr
	}
	return true
}
