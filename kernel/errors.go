// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package kernel

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrUnknownKernel is returned by Registry.Lookup for unregistered names.
	ErrUnknownKernel = errors.New("unknown kernel")
	// ErrMissingSize means no size argument was supplied.
	ErrMissingSize = errors.New("missing size argument")
	// ErrExtraArgs means more than one positional argument was supplied.
	ErrExtraArgs = errors.New("expected exactly one size argument")
	// ErrInvalidSize means the size is not a non-negative decimal integer.
	ErrInvalidSize = errors.New("size must be a non-negative integer")
	// ErrSizeOutOfRange means the size exceeds what the kernel represents.
	ErrSizeOutOfRange = errors.New("size out of range")
)

// UsageError is a pre-flight rejection of the invocation. Entry points
// report it on stderr and exit 1 without running the kernel.
type UsageError struct {
	Kernel string
	Arg    string
	Err    error
}

func (e *UsageError) Error() string {
	switch {
	case e.Kernel == "":
		return e.Err.Error()
	case e.Arg == "":
		return fmt.Sprintf("%s: %v", e.Kernel, e.Err)
	default:
		return fmt.Sprintf("%s: %q: %v", e.Kernel, e.Arg, e.Err)
	}
}

func (e *UsageError) Unwrap() error { return e.Err }

// IsUsage reports whether err is a usage error.
func IsUsage(err error) bool {
	var u *UsageError
	return errors.As(err, &u)
}

// ParseSize parses the size argument of kernel k and validates it against
// the kernel's limit.
func ParseSize(k Kernel, arg string) (int, error) {
	if arg == "" {
		return 0, &UsageError{Kernel: k.Name, Err: ErrMissingSize}
	}
	v, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &UsageError{Kernel: k.Name, Arg: arg, Err: ErrSizeOutOfRange}
		}
		return 0, &UsageError{Kernel: k.Name, Arg: arg, Err: ErrInvalidSize}
	}
	if v < 0 {
		return 0, &UsageError{Kernel: k.Name, Arg: arg, Err: ErrInvalidSize}
	}
	if v > int64(k.Limit()) {
		return 0, &UsageError{Kernel: k.Name, Arg: arg, Err: fmt.Errorf("%w: maximum is %d", ErrSizeOutOfRange, k.Limit())}
	}
	return int(v), nil
}

// SizeArgs validates the positional arguments of a kernel invocation and
// returns the parsed size.
func SizeArgs(k Kernel, args []string) (int, error) {
	switch len(args) {
	case 0:
		return 0, &UsageError{Kernel: k.Name, Err: ErrMissingSize}
	case 1:
		return ParseSize(k, args[0])
	default:
		return 0, &UsageError{Kernel: k.Name, Err: fmt.Errorf("%w, got %d", ErrExtraArgs, len(args))}
	}
}
