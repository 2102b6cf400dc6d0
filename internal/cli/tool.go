// SPDX-License-Identifier: CC-BY-NC-4.0
// Copyright (c) 2025-2026 fumi-engineer

package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fumi-engineer/rosetta-kernels/internal/logging"
	"github.com/fumi-engineer/rosetta-kernels/internal/suite"
	"github.com/fumi-engineer/rosetta-kernels/kernel"
)

// tool is the state behind the kernels command tree.
type tool struct {
	reg     *kernel.Registry
	stderr  io.Writer
	verbose bool
	log     *zap.Logger

	suitePath  string
	outPath    string
	goldenPath string
	jobs       int
}

// ToolCommand returns the root of the kernels reference tool.
func ToolCommand(reg *kernel.Registry, stderr io.Writer) *cobra.Command {
	t := &tool{reg: reg, stderr: stderr, log: logging.Nop()}

	root := &cobra.Command{
		Use:   "kernels",
		Short: "Reference tooling for the benchmark kernel corpus",
		Long: `kernels lists the corpus, runs any kernel by name, and produces or
checks golden files holding the expected output of every (kernel, size)
pair in a suite.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			t.log = logging.New(t.stderr, t.verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = t.log.Sync()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().BoolVarP(&t.verbose, "verbose", "v", false, "Enable debug logging")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every kernel with its shape and maximum size",
		Args:  cobra.NoArgs,
		RunE:  t.list,
	}

	runCmd := &cobra.Command{
		Use:   "run NAME N",
		Short: "Run one kernel, exactly like its standalone binary",
		Args:  cobra.MinimumNArgs(1),
		RunE:  t.run,
	}
	runCmd.Flags().SetInterspersed(false)

	goldenCmd := &cobra.Command{
		Use:   "golden",
		Short: "Compute the golden outputs of a suite",
		Args:  cobra.NoArgs,
		RunE:  t.golden,
	}
	goldenCmd.Flags().StringVar(&t.suitePath, "suite", "", "Suite file (default: embedded reference suite)")
	goldenCmd.Flags().StringVarP(&t.outPath, "out", "o", "", "Output file (default: stdout)")
	goldenCmd.Flags().IntVarP(&t.jobs, "jobs", "j", runtime.NumCPU(), "Kernels run concurrently")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Recompute a golden file and report differences",
		Args:  cobra.NoArgs,
		RunE:  t.verify,
	}
	verifyCmd.Flags().StringVar(&t.goldenPath, "golden", "", "Golden file to check (required)")
	verifyCmd.Flags().IntVarP(&t.jobs, "jobs", "j", runtime.NumCPU(), "Kernels run concurrently")
	_ = verifyCmd.MarkFlagRequired("golden")

	root.AddCommand(listCmd, runCmd, goldenCmd, verifyCmd)
	return root
}

// RunTool executes the kernels tool with argv and returns the exit status.
func RunTool(argv []string, stdout, stderr io.Writer) int {
	return execute(ToolCommand(kernel.Default(), stderr), argv, stdout, stderr, logging.New(stderr, false))
}

// ToolMain runs the kernels tool on the process arguments and exits.
func ToolMain() {
	os.Exit(RunTool(os.Args[1:], os.Stdout, os.Stderr))
}

func (t *tool) list(cmd *cobra.Command, _ []string) error {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "SHAPE", "PRECISION", "MAX N")
	for _, k := range t.reg.All() {
		tbl.Row(k.Name, string(k.Shape), k.Precision.String(), strconv.Itoa(k.Limit()))
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), tbl.String())
	return err
}

func (t *tool) run(cmd *cobra.Command, args []string) error {
	k, err := t.reg.Lookup(args[0])
	if err != nil {
		return err
	}
	n, err := kernel.SizeArgs(k, args[1:])
	if err != nil {
		return err
	}
	t.log.Debug("running kernel", zap.String("kernel", k.Name), zap.Int("size", n))
	res, err := k.Execute(n)
	if err != nil {
		return err
	}
	_, err = res.WriteTo(cmd.OutOrStdout())
	return err
}

func (t *tool) golden(cmd *cobra.Command, _ []string) error {
	s, err := t.loadSuite()
	if err != nil {
		return err
	}
	r := suite.Runner{Registry: t.reg, Jobs: t.jobs, Log: t.log}
	g, err := r.Generate(cmd.Context(), s)
	if err != nil {
		return err
	}
	if t.outPath == "" {
		_, err = g.WriteTo(cmd.OutOrStdout())
		return err
	}
	if err := g.Save(t.outPath); err != nil {
		return err
	}
	t.log.Info("golden file written", zap.String("path", t.outPath), zap.Int("cases", len(g.Results)))
	return nil
}

func (t *tool) verify(cmd *cobra.Command, _ []string) error {
	g, err := suite.LoadGolden(t.goldenPath)
	if err != nil {
		return err
	}
	r := suite.Runner{Registry: t.reg, Jobs: t.jobs, Log: t.log}
	mismatches, err := r.Verify(cmd.Context(), g)
	for _, m := range mismatches {
		t.log.Warn("mismatch",
			zap.Stringer("case", m.Case),
			zap.String("want", m.Want),
			zap.String("got", m.Got))
	}
	if err != nil {
		return err
	}
	t.log.Info("golden file verified", zap.String("path", t.goldenPath), zap.Int("cases", len(g.Results)))
	return nil
}

func (t *tool) loadSuite() (*suite.Suite, error) {
	if t.suitePath == "" {
		return suite.Default()
	}
	return suite.Load(t.suitePath)
}
