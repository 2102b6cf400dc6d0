// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Package numeric holds the floating point iteration kernels.
//
// Iteration counts are constants; changing one changes every reference
// output. Results are compared as %.9f text, which is a weaker promise than
// the integer checksums elsewhere: two implementations agree only as far as
// IEEE 754 rounding of the same operation sequence agrees.
//
// The Go language specification lets the compiler fuse x*y + z into one
// FMA instruction (arm64, ppc64le, s390x do). A fused result rounds once instead of twice,
// which is enough to flip a Mandelbrot escape test or the ninth digit of a
// norm. Every product that feeds an addition is therefore wrapped in an
// explicit float64 conversion, which the language defines as a rounding point.
package numeric
