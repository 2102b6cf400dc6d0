// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Command ackermann runs the ackermann benchmark kernel: ackermann N.
package main

import "github.com/fumi-engineer/rosetta-kernels/internal/cli"

func main() {
	cli.Main("ackermann")
}
