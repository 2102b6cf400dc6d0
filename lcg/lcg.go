// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Package lcg implements the deterministic sequence generator every kernel
// draws its synthetic input from.
//
// The recurrence is the classic ANSI C rand():
//
//	state = (state*1103515245 + 12345) mod 2^31
//	value = (state >> 16) & 0x7fff
//
// It needs nothing beyond 64-bit integer arithmetic, so a C, Rust, Python or
// Java port reproduces the exact same values. Implementations that keep the
// state modulo 2^32 instead agree too: bits 16..30 only depend on the low 31
// bits of the state.
package lcg

const (
	Multiplier = 1103515245
	Increment  = 12345
	// DefaultSeed seeds every kernel's generator.
	DefaultSeed = 42

	stateMask = 1<<31 - 1
	valueMask = 0x7fff
)

// MaxValue is the largest value Next can return.
const MaxValue = valueMask

// Generator is a single LCG stream. The zero value is seeded with 0, not
// DefaultSeed; use New.
type Generator struct {
	state uint64
}

// New returns a generator seeded with seed (reduced modulo 2^31).
func New(seed uint64) *Generator {
	return &Generator{state: seed & stateMask}
}

// Default returns a generator seeded with DefaultSeed.
func Default() *Generator { return New(DefaultSeed) }

// State returns the raw 31-bit state. Two generators with equal state
// produce equal streams.
func (g *Generator) State() uint64 { return g.state }

// Next advances the generator once and returns a value in [0, MaxValue].
func (g *Generator) Next() int {
	g.state = (g.state*Multiplier + Increment) & stateMask
	return int((g.state >> 16) & valueMask)
}

// Intn advances once and reduces the value modulo bound.
// It panics if bound <= 0.
func (g *Generator) Intn(bound int) int {
	if bound <= 0 {
		panic("lcg: non-positive bound")
	}
	return g.Next() % bound
}

// Fill overwrites dst with successive values.
func (g *Generator) Fill(dst []int) {
	for i := range dst {
		dst[i] = g.Next()
	}
}

// Sequence returns the first n values of a fresh DefaultSeed generator.
// n == 0 returns an empty, non-nil slice. It panics if n < 0.
func Sequence(n int) []int {
	if n < 0 {
		panic("lcg: negative length")
	}
	out := make([]int, n)
	Default().Fill(out)
	return out
}

// Bounded is Sequence with every value reduced modulo bound. bound is only
// consulted when n > 0, so Bounded(0, 0) is valid.
func Bounded(n, bound int) []int {
	if n < 0 {
		panic("lcg: negative length")
	}
	out := make([]int, n)
	if n == 0 {
		return out
	}
	g := Default()
	for i := range out {
		out[i] = g.Intn(bound)
	}
	return out
}
