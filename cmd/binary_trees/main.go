// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Command binary_trees runs the binary_trees benchmark kernel: binary_trees N.
package main

import "github.com/fumi-engineer/rosetta-kernels/internal/cli"

func main() {
	cli.Main("binary_trees")
}
