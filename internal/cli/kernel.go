// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

// Package cli holds the process contract shared by every kernel binary and
// the kernels tool: arguments in, verification text on stdout, diagnostics
// on stderr, exit status 0 or 1.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fumi-engineer/rosetta-kernels/internal/logging"
	"github.com/fumi-engineer/rosetta-kernels/kernel"
)

// Exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// KernelCommand returns the cobra command running k on its single size
// argument. The size is validated before any input is generated.
func KernelCommand(k kernel.Kernel) *cobra.Command {
	cmd := &cobra.Command{
		Use:   k.Name + " N",
		Short: k.Summary,
		Long: fmt.Sprintf("%s: %s.\n\nN is a non-negative integer no larger than %d.",
			k.Name, k.Summary, k.Limit()),
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := kernel.SizeArgs(k, args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := kernel.SizeArgs(k, args)
			if err != nil {
				return err
			}
			res, err := k.Execute(n)
			if err != nil {
				return err
			}
			_, err = res.WriteTo(cmd.OutOrStdout())
			return err
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &kernel.UsageError{Kernel: k.Name, Err: err}
	})
	return cmd
}

// Run executes the kernel registered under name with argv and returns the
// exit status.
func Run(name string, argv []string, stdout, stderr io.Writer) int {
	log := logging.New(stderr, false)
	defer func() { _ = log.Sync() }()

	k, err := kernel.Default().Lookup(name)
	if err != nil {
		log.Error(err.Error())
		return ExitFailure
	}
	return execute(KernelCommand(k), argv, stdout, stderr, log)
}

// Main runs the named kernel on the process arguments and exits.
func Main(name string) {
	os.Exit(Run(name, os.Args[1:], os.Stdout, os.Stderr))
}

func execute(cmd *cobra.Command, argv []string, stdout, stderr io.Writer, log *zap.Logger) int {
	if argv == nil {
		// cobra falls back to os.Args on nil.
		argv = []string{}
	}
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		if kernel.IsUsage(err) {
			log.Error(err.Error())
		} else {
			log.Error("command failed", zap.Error(err))
		}
		return ExitFailure
	}
	return ExitOK
}
