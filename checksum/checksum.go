// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Package checksum reduces kernel results to small integers that can be
// compared across implementations.
//
// The reduction is a left fold of (acc + v) mod 1_000_000_007. The modulus
// is a prime below 2^31, so every intermediate fits a signed 32-bit slot
// after reduction and an int64 before it, in any language.
package checksum

import "fmt"

// Modulus bounds every checksum to [0, Modulus).
const Modulus = 1_000_000_007

// Add folds one value into acc. Negative values are normalized so the
// result is always in [0, Modulus).
func Add(acc, v int64) int64 {
	r := (acc + v%Modulus) % Modulus
	if r < 0 {
		r += Modulus
	}
	return r
}

// Mul returns a*b mod Modulus for a, b already in [0, Modulus).
func Mul(a, b int64) int64 {
	return a % Modulus * (b % Modulus) % Modulus
}

// Integer is the set of element types the reducer accepts.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

// Fold continues a reduction from acc over values, left to right.
// Fold(Sum(a[:k]), a[k:]) == Sum(a) for every k.
func Fold[T Integer](acc int64, values []T) int64 {
	for _, v := range values {
		acc = Add(acc, int64(v))
	}
	return acc
}

// Sum reduces values from the zero accumulator.
func Sum[T Integer](values []T) int64 {
	return Fold(0, values)
}

// Summary is the verification triple printed by sort kernels. First and
// Last catch comparator and boundary bugs that a sum alone would mask.
type Summary struct {
	First, Last int64
	Sum         int64
}

// Summarize builds the triple for an already sorted slice. The empty slice
// summarizes to 0 0 0.
func Summarize[T Integer](sorted []T) Summary {
	if len(sorted) == 0 {
		return Summary{}
	}
	return Summary{
		First: int64(sorted[0]),
		Last:  int64(sorted[len(sorted)-1]),
		Sum:   Sum(sorted),
	}
}

// String renders the triple in output order.
func (s Summary) String() string {
	return fmt.Sprintf("%d %d %d", s.First, s.Last, s.Sum)
}

// IsSorted reports whether values are in non-decreasing order.
func IsSorted[T Integer](values []T) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}

// FormatFloat renders a floating point kernel result. Nine fractional
// digits is the agreed precision; cross-implementation equality is only
// expected up to rounding, unlike the integer path.
func FormatFloat(v float64) string {
	return fmt.Sprintf("%.9f", v)
}
