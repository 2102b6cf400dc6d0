// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Package hashing implements the search and hashing kernels on top of a
// fixed-capacity open-addressing table.
package hashing

import "math/bits"

// MinCapacity is the smallest table ever allocated.
const MinCapacity = 16

// fibMul is 2^64 / phi, the Fibonacci hashing multiplier.
const fibMul = 0x9E3779B97F4A7C15

// Capacity returns the slot count for a table expected to hold n keys:
// the next power of two >= 2n, and at least MinCapacity.
func Capacity(n int) int {
	if n < 0 {
		panic("hashing: negative size")
	}
	c := MinCapacity
	for c < 2*n {
		c <<= 1
	}
	return c
}

// Table maps int64 keys to int64 values with linear probing. Its capacity
// is fixed at construction; inserting more distinct keys than slots
// panics. Kernels size it from the validated N, which keeps the load factor
// at or below one half.
type Table struct {
	keys  []int64
	vals  []int64
	used  []bool
	mask  uint64
	shift uint
	n     int
}

// NewTable allocates a table for n keys.
func NewTable(n int) *Table {
	c := Capacity(n)
	return &Table{
		keys:  make([]int64, c),
		vals:  make([]int64, c),
		used:  make([]bool, c),
		mask:  uint64(c - 1),
		shift: uint(64 - bits.TrailingZeros(uint(c))),
	}
}

// Cap returns the number of slots.
func (t *Table) Cap() int { return len(t.keys) }

// Len returns the number of distinct keys stored.
func (t *Table) Len() int { return t.n }

func (t *Table) home(key int64) uint64 {
	return (uint64(key) * fibMul) >> t.shift
}

// find returns the slot holding key, or the empty slot where it would go.
// ok is false when the key is absent.
func (t *Table) find(key int64) (slot uint64, ok bool) {
	slot = t.home(key)
	for probes := 0; probes < len(t.keys); probes++ {
		if !t.used[slot] {
			return slot, false
		}
		if t.keys[slot] == key {
			return slot, true
		}
		slot = (slot + 1) & t.mask
	}
	return 0, false
}

func (t *Table) claim(key int64) uint64 {
	slot, ok := t.find(key)
	if ok {
		return slot
	}
	if t.used[slot] {
		panic("hashing: table full")
	}
	t.used[slot] = true
	t.keys[slot] = key
	t.vals[slot] = 0
	t.n++
	return slot
}

// Put stores val under key, replacing any previous value.
func (t *Table) Put(key, val int64) {
	t.vals[t.claim(key)] = val
}

// Add increments the value under key by delta, starting from zero for a
// new key, and returns the new value.
func (t *Table) Add(key, delta int64) int64 {
	slot := t.claim(key)
	t.vals[slot] += delta
	return t.vals[slot]
}

// Get returns the value stored under key.
func (t *Table) Get(key int64) (int64, bool) {
	slot, ok := t.find(key)
	if !ok {
		return 0, false
	}
	return t.vals[slot], true
}
