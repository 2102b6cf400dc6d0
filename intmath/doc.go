// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Package intmath holds integer arithmetic and array kernels: sieve,
// Collatz, GCD, prefix sums and integer matrix multiplication.
package intmath
