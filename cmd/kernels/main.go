// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Command kernels lists, runs and verifies the benchmark kernel corpus.
package main

import "github.com/fumi-engineer/rosetta-kernels/internal/cli"

func main() {
	cli.ToolMain()
}
