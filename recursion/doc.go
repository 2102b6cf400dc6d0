// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Package recursion holds the call-heavy kernels: naive Fibonacci,
// Ackermann, N-queens, binary trees and fannkuch.
//
// Nothing here is memoized or rewritten into a loop; the recursion is the
// workload. Counts flow back through return values, never through package
// state, so every function is reentrant.
package recursion
