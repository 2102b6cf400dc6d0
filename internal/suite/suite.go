// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Package suite describes which (kernel, size) pairs a benchmark run covers
// and records their reference outputs as golden files, so every port of
// the corpus can be checked against the same expected text.
package suite

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fumi-engineer/rosetta-kernels/kernel"
)

//go:embed default.yaml
var defaultSuite []byte

// ErrInvalidSuite is wrapped by every suite validation failure.
var ErrInvalidSuite = errors.New("invalid suite")

// Entry lists the sizes one kernel is run at.
type Entry struct {
	Name  string `yaml:"name"`
	Sizes []int  `yaml:"sizes"`
}

// Suite is an ordered list of entries.
type Suite struct {
	Kernels []Entry `yaml:"kernels"`
}

// Case is a single kernel invocation.
type Case struct {
	Kernel string
	Size   int
}

func (c Case) String() string { return fmt.Sprintf("%s(%d)", c.Kernel, c.Size) }

// Default returns the embedded reference suite.
func Default() (*Suite, error) {
	return Parse(defaultSuite)
}

// Parse decodes a YAML suite. Unknown fields are rejected.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := decodeStrict(bytes.NewReader(data), &s); err != nil {
		return nil, fmt.Errorf("parse suite: %w", err)
	}
	return &s, nil
}

// Load reads and parses the suite at path.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks every entry against reg: names must be registered and
// unique, sizes must be accepted by the kernel.
func (s *Suite) Validate(reg *kernel.Registry) error {
	if len(s.Kernels) == 0 {
		return fmt.Errorf("%w: no kernels", ErrInvalidSuite)
	}
	seen := make(map[string]bool, len(s.Kernels))
	for i, e := range s.Kernels {
		if seen[e.Name] {
			return fmt.Errorf("%w: entry %d: duplicate kernel %q", ErrInvalidSuite, i, e.Name)
		}
		seen[e.Name] = true
		k, err := reg.Lookup(e.Name)
		if err != nil {
			return fmt.Errorf("%w: entry %d: %w", ErrInvalidSuite, i, err)
		}
		if len(e.Sizes) == 0 {
			return fmt.Errorf("%w: %s: no sizes", ErrInvalidSuite, e.Name)
		}
		for _, n := range e.Sizes {
			if err := k.Validate(n); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidSuite, err)
			}
		}
	}
	return nil
}

// Cases flattens the suite in file order.
func (s *Suite) Cases() []Case {
	var out []Case
	for _, e := range s.Kernels {
		for _, n := range e.Sizes {
			out = append(out, Case{Kernel: e.Name, Size: n})
		}
	}
	return out
}

func decodeStrict(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
