// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Command coins runs the coins benchmark kernel: coins N.
package main

import "github.com/fumi-engineer/rosetta-kernels/internal/cli"

func main() {
	cli.Main("coins")
}
