// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Command bubble_sort runs the bubble_sort benchmark kernel: bubble_sort N.
package main

import "github.com/fumi-engineer/rosetta-kernels/internal/cli"

func main() {
	cli.Main("bubble_sort")
}
