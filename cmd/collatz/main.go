// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Command collatz runs the collatz benchmark kernel: collatz N.
package main

import "github.com/fumi-engineer/rosetta-kernels/internal/cli"

func main() {
	cli.Main("collatz")
}
