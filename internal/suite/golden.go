// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package suite

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/fumi-engineer/rosetta-kernels/kernel"
)

// ErrGoldenMismatch is returned by Verify when any output differs.
var ErrGoldenMismatch = errors.New("golden mismatch")

// Record is the reference output of one case.
type Record struct {
	Kernel string `yaml:"kernel"`
	Size   int    `yaml:"size"`
	Output string `yaml:"output"`
}

// Case returns the invocation the record was produced by.
func (r Record) Case() Case { return Case{Kernel: r.Kernel, Size: r.Size} }

// Golden is an ordered set of reference outputs.
type Golden struct {
	Results []Record `yaml:"results"`
}

// Mismatch is one disagreement found by Verify.
type Mismatch struct {
	Case Case
	Want string
	Got  string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: want %q, got %q", m.Case, m.Want, m.Got)
}

// Runner evaluates cases against a registry. Cases run concurrently, at
// most Jobs at a time; each kernel invocation is still single-threaded.
type Runner struct {
	Registry *kernel.Registry
	// Jobs bounds concurrent invocations; values below 1 mean 1.
	Jobs int
	Log  *zap.Logger
}

func (r Runner) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

// run executes every case and returns the outputs in case order.
func (r Runner) run(ctx context.Context, cases []Case) ([]string, error) {
	jobs := r.Jobs
	if jobs < 1 {
		jobs = 1
	}
	log := r.logger()
	out := make([]string, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, c := range cases {
		if gctx.Err() != nil {
			break
		}
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			k, err := r.Registry.Lookup(c.Kernel)
			if err != nil {
				return err
			}
			res, err := k.Execute(c.Size)
			if err != nil {
				return err
			}
			out[i] = res.String()
			log.Debug("case done", zap.String("kernel", c.Kernel), zap.Int("size", c.Size))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Generate computes the golden outputs of every case in s. The suite is
// validated first.
func (r Runner) Generate(ctx context.Context, s *Suite) (*Golden, error) {
	if err := s.Validate(r.Registry); err != nil {
		return nil, err
	}
	cases := s.Cases()
	r.logger().Info("generating golden outputs", zap.Int("cases", len(cases)), zap.Int("jobs", r.Jobs))
	outs, err := r.run(ctx, cases)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	g := &Golden{Results: make([]Record, len(cases))}
	for i, c := range cases {
		g.Results[i] = Record{Kernel: c.Kernel, Size: c.Size, Output: outs[i]}
	}
	return g, nil
}

// Verify recomputes every record of g. It returns the mismatches in file
// order, and ErrGoldenMismatch if there is at least one.
func (r Runner) Verify(ctx context.Context, g *Golden) ([]Mismatch, error) {
	cases := make([]Case, len(g.Results))
	for i, rec := range g.Results {
		cases[i] = rec.Case()
	}
	r.logger().Info("verifying golden outputs", zap.Int("cases", len(cases)), zap.Int("jobs", r.Jobs))
	outs, err := r.run(ctx, cases)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	var mismatches []Mismatch
	for i, rec := range g.Results {
		if outs[i] != rec.Output {
			mismatches = append(mismatches, Mismatch{Case: rec.Case(), Want: rec.Output, Got: outs[i]})
		}
	}
	if len(mismatches) > 0 {
		return mismatches, fmt.Errorf("%w: %d of %d cases", ErrGoldenMismatch, len(mismatches), len(cases))
	}
	return nil, nil
}

// ParseGolden decodes a YAML golden file.
func ParseGolden(data []byte) (*Golden, error) {
	var g Golden
	if err := decodeStrict(bytes.NewReader(data), &g); err != nil {
		return nil, fmt.Errorf("parse golden: %w", err)
	}
	return &g, nil
}

// LoadGolden reads and parses the golden file at path.
func LoadGolden(path string) (*Golden, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read golden: %w", err)
	}
	g, err := ParseGolden(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// WriteTo encodes g as YAML.
func (g *Golden) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		return 0, fmt.Errorf("encode golden: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("encode golden: %w", err)
	}
	return buf.WriteTo(w)
}

// Save writes g to path.
func (g *Golden) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write golden: %w", err)
	}
	if _, err := g.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
