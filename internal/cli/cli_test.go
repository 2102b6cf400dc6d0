// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/fumi-engineer/rosetta-kernels/internal/suite"
	"github.com/fumi-engineer/rosetta-kernels/kernel"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func runKernel(t *testing.T, name string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(name, args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func runTool(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := RunTool(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// =============================================================================
// Kernel binaries
// =============================================================================

func TestKernelSuccess(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"nqueens", "8", "92\n"},
		{"bubble_sort", "10", "1093 26500 175460\n"},
		{"fib", "0", "0\n"},
		{"spectral_norm", "10", "1.271844019\n"},
		{"fib", "+7", "13\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.arg, func(t *testing.T) {
			code, out, errOut := runKernel(t, tt.name, tt.arg)
			assert.Equal(t, ExitOK, code)
			assert.Equal(t, tt.want, out)
			assert.Empty(t, errOut)
		})
	}
}

func TestKernelUsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing", nil, "missing size argument"},
		{"extra", []string{"1", "2"}, "expected exactly one size argument"},
		{"not a number", []string{"abc"}, "non-negative integer"},
		{"negative", []string{"-1"}, "fib"},
		{"too large", []string{"93"}, "maximum is 92"},
		{"overflow", []string{"123456789012345678901234567890"}, "out of range"},
		{"unknown flag", []string{"--fast", "3"}, "unknown flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runKernel(t, "fib", tt.args...)
			assert.Equal(t, ExitFailure, code)
			assert.Empty(t, out, "no verification text on failure")
			assert.Contains(t, errOut, tt.wantErr)
			assert.True(t, strings.HasPrefix(errOut, "error "), errOut)
		})
	}
}

func TestUnknownKernelName(t *testing.T) {
	code, out, errOut := runKernel(t, "bogo_sort", "3")
	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "unknown kernel")
}

func TestKernelHelp(t *testing.T) {
	code, out, _ := runKernel(t, "fib", "--help")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "no larger than 92")
}

func TestEveryCatalogKernelHasCommand(t *testing.T) {
	for _, k := range kernel.Default().All() {
		cmd := KernelCommand(k)
		assert.Equal(t, k.Name, cmd.Name())
		assert.NoError(t, cmd.Args(cmd, []string{"0"}), k.Name)
	}
}

// =============================================================================
// kernels tool
// =============================================================================

func TestToolList(t *testing.T) {
	code, out, _ := runTool(t, "list")
	require.Equal(t, ExitOK, code)
	for _, name := range kernel.Default().Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "comparison-sort")
	assert.Contains(t, out, "rounded")
}

func TestToolRun(t *testing.T) {
	code, out, _ := runTool(t, "run", "collatz", "27")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "27 111\n", out)

	code, out, errOut := runTool(t, "run", "collatz", "-5")
	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "non-negative integer")

	code, _, errOut = runTool(t, "run", "nope", "1")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "unknown kernel")
}

func TestToolGoldenThenVerify(t *testing.T) {
	dir := t.TempDir()
	suitePath := filepath.Join(dir, "suite.yaml")
	goldenPath := filepath.Join(dir, "golden.yaml")
	require.NoError(t, os.WriteFile(suitePath, []byte("kernels:\n  - name: sieve\n    sizes: [10, 100]\n  - name: coins\n    sizes: [100]\n"), 0o644))

	code, _, errOut := runTool(t, "golden", "--suite", suitePath, "--out", goldenPath, "--jobs", "2")
	require.Equal(t, ExitOK, code, errOut)
	assert.Contains(t, errOut, "golden file written")

	g, err := suite.LoadGolden(goldenPath)
	require.NoError(t, err)
	assert.Equal(t, []suite.Record{
		{Kernel: "sieve", Size: 10, Output: "4"},
		{Kernel: "sieve", Size: 100, Output: "25"},
		{Kernel: "coins", Size: 100, Output: "293"},
	}, g.Results)

	code, _, errOut = runTool(t, "verify", "--golden", goldenPath)
	assert.Equal(t, ExitOK, code, errOut)

	g.Results[1].Output = "26"
	require.NoError(t, g.Save(goldenPath))
	code, _, errOut = runTool(t, "verify", "--golden", goldenPath)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "sieve(100)")
	assert.Contains(t, errOut, "golden mismatch")
}

func TestToolGoldenToStdout(t *testing.T) {
	dir := t.TempDir()
	suitePath := filepath.Join(dir, "suite.yaml")
	require.NoError(t, os.WriteFile(suitePath, []byte("kernels:\n  - name: fib\n    sizes: [20]\n"), 0o644))

	code, out, _ := runTool(t, "golden", "--suite", suitePath)
	require.Equal(t, ExitOK, code)
	g, err := suite.ParseGolden([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, []suite.Record{{Kernel: "fib", Size: 20, Output: "6765"}}, g.Results)
}

func TestToolGoldenRejectsInvalidSuite(t *testing.T) {
	dir := t.TempDir()
	suitePath := filepath.Join(dir, "suite.yaml")
	require.NoError(t, os.WriteFile(suitePath, []byte("kernels:\n  - name: fib\n    sizes: [100]\n"), 0o644))

	code, out, errOut := runTool(t, "golden", "--suite", suitePath)
	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "invalid suite")
}

func TestToolVerifyRequiresGolden(t *testing.T) {
	code, _, errOut := runTool(t, "verify")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "golden")
}

func TestToolVerboseLogsDebug(t *testing.T) {
	code, _, errOut := runTool(t, "--verbose", "run", "fib", "10")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, errOut, "debug running kernel")
}
