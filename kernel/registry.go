// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package kernel

import (
	"fmt"
	"sort"
)

// Registry is an immutable set of kernels keyed by name.
type Registry struct {
	byName map[string]Kernel
	names  []string
}

// NewRegistry indexes ks. Names must be unique and non-empty and every
// kernel needs a Run function.
func NewRegistry(ks ...Kernel) (*Registry, error) {
	r := &Registry{byName: make(map[string]Kernel, len(ks))}
	for _, k := range ks {
		if k.Name == "" {
			return nil, fmt.Errorf("kernel registry: empty name")
		}
		if k.Run == nil {
			return nil, fmt.Errorf("kernel registry: %s has no Run", k.Name)
		}
		if _, dup := r.byName[k.Name]; dup {
			return nil, fmt.Errorf("kernel registry: duplicate kernel %s", k.Name)
		}
		r.byName[k.Name] = k
		r.names = append(r.names, k.Name)
	}
	sort.Strings(r.names)
	return r, nil
}

// Lookup returns the kernel registered under name.
func (r *Registry) Lookup(name string) (Kernel, error) {
	k, ok := r.byName[name]
	if !ok {
		return Kernel{}, &UsageError{Kernel: name, Err: ErrUnknownKernel}
	}
	return k, nil
}

// Names returns every kernel name, sorted.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// All returns every kernel, sorted by name.
func (r *Registry) All() []Kernel {
	out := make([]Kernel, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.byName[n])
	}
	return out
}

// Len returns the number of kernels.
func (r *Registry) Len() int { return len(r.names) }
