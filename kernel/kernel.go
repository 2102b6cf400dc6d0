// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Package kernel defines the kernel contract: one non-negative size in,
// deterministic verification text out. It also carries the catalog wiring
// every kernel in the library to its input generator and reducer.
//
// A kernel run is synchronous and single-threaded. Input is synthesized
// from the lcg package only after the size is validated, so allocation is
// always bounded by a size the kernel accepted.
package kernel

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fumi-engineer/rosetta-kernels/checksum"
)

// Shape groups kernels by the computation they stress.
type Shape string

const (
	ComparisonSort     Shape = "comparison-sort"
	NonComparisonSort  Shape = "non-comparison-sort"
	SearchHash         Shape = "search-hash"
	GraphTraversal     Shape = "graph-traversal"
	DynamicProgramming Shape = "dynamic-programming"
	Recursion          Shape = "recursion"
	NumericIteration   Shape = "numeric-iteration"
	IntegerArithmetic  Shape = "integer-arithmetic"
)

// Precision states how strictly two implementations must agree.
type Precision int

const (
	// Exact outputs are integers and must match byte for byte.
	Exact Precision = iota
	// Rounded outputs are %.9f floats; agreement holds up to IEEE 754
	// rounding of the same operation order.
	Rounded
)

func (p Precision) String() string {
	if p == Rounded {
		return "rounded"
	}
	return "exact"
}

// DefaultMaxSize is the largest N any kernel accepts unless it sets a
// tighter bound. Sizes above it do not fit a signed 32-bit integer, which
// ports in C and Java commonly use for N.
const DefaultMaxSize = math.MaxInt32

// Kernel is one catalog entry.
type Kernel struct {
	Name      string
	Shape     Shape
	Precision Precision
	// MaxSize is the largest accepted N; zero means DefaultMaxSize.
	MaxSize int
	// Summary is a one-line description for listings.
	Summary string
	// Run computes the verification output for an already validated n.
	Run func(n int) (Result, error)
}

// Limit returns the effective maximum size.
func (k Kernel) Limit() int {
	if k.MaxSize > 0 {
		return k.MaxSize
	}
	return DefaultMaxSize
}

// Validate rejects sizes the kernel cannot represent.
func (k Kernel) Validate(n int) error {
	if n < 0 {
		return &UsageError{Kernel: k.Name, Arg: fmt.Sprint(n), Err: ErrInvalidSize}
	}
	if n > k.Limit() {
		return &UsageError{Kernel: k.Name, Arg: fmt.Sprint(n), Err: fmt.Errorf("%w: maximum is %d", ErrSizeOutOfRange, k.Limit())}
	}
	return nil
}

// Execute validates n and runs the kernel.
func (k Kernel) Execute(n int) (Result, error) {
	if err := k.Validate(n); err != nil {
		return Result{}, err
	}
	r, err := k.Run(n)
	if err != nil {
		return Result{}, fmt.Errorf("%s(%d): %w", k.Name, n, err)
	}
	return r, nil
}

// Result is the verification text of one run: one or more lines of
// space-separated values.
type Result struct {
	lines []string
}

// Ints renders one line of integers.
func Ints(values ...int64) Result {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return Result{lines: []string{strings.Join(parts, " ")}}
}

// Float renders one fixed-precision float line.
func Float(v float64) Result {
	return Result{lines: []string{checksum.FormatFloat(v)}}
}

// Summary renders a sort triple.
func Summary(s checksum.Summary) Result {
	return Ints(s.First, s.Last, s.Sum)
}

// Lines concatenates results into a multi-line result.
func Lines(rs ...Result) Result {
	var out Result
	for _, r := range rs {
		out.lines = append(out.lines, r.lines...)
	}
	return out
}

// String returns the text without a trailing newline.
func (r Result) String() string {
	return strings.Join(r.lines, "\n")
}

// WriteTo writes every line newline-terminated.
func (r Result) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range r.lines {
		n, err := io.WriteString(w, line+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
