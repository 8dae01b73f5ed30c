package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/utkarsh5026/heapbench/backend"
	"github.com/utkarsh5026/heapbench/bench"
	"github.com/utkarsh5026/heapbench/format"
	"github.com/utkarsh5026/heapbench/task"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	formatCSV     = "csv"
	formatCompare = "compare"
)

// usageError marks invalid invocations, which exit with status 2 instead
// of the generic failure status.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

type options struct {
	tasks      []string
	backends   []string
	ranks      []int
	maxExp     int
	iterations int
	timeoutSec float64
	output     string
	format     string
	verbose    bool
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heapbench",
		Short: "Benchmark priority-queue backends across tasks and input sizes",
		Long: `heapbench drives every selected task against every selected backend at
each requested rank (input size), sequentially, and reports either raw
timings (csv) or a per-task pairwise comparison (compare).

A negative iteration count is a wall-clock floor: -2 re-runs each cell
until at least 2 seconds have elapsed. The per-cell timeout is soft; a
cell is abandoned after the iteration that trips the budget.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &usageError{fmt.Errorf("unexpected arguments: %v", args)}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&opts.tasks, "task", "t", nil, "task to run (repeatable; default all)")
	flags.StringSliceVarP(&opts.backends, "backend", "b", nil, "backend to benchmark (repeatable; default all)")
	flags.IntSliceVarP(&opts.ranks, "rank", "r", nil, "explicit input size (repeatable)")
	flags.IntVarP(&opts.maxExp, "max-exponent", "e", 4, "without --rank, use ranks 10^1..10^N")
	flags.IntVarP(&opts.iterations, "iterations", "i", 1, "iterations per cell; negative = minimum seconds")
	flags.Float64Var(&opts.timeoutSec, "timeout", 0, "per-cell timeout in seconds (0 = none)")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	flags.StringVarP(&opts.format, "format", "f", "", "output format: csv or compare (default csv with --output, compare otherwise)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log per-cell progress to stderr")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{err}
	})
	return cmd
}

func execute(args []string) int {
	opts := &options{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	fmt.Fprintf(os.Stderr, "heapbench: %v\n", err)

	var ue *usageError
	switch {
	case errors.As(err, &ue),
		errors.Is(err, bench.ErrUnknownTask),
		errors.Is(err, bench.ErrUnknownBackend),
		errors.Is(err, bench.ErrNoRanks),
		errors.Is(err, bench.ErrBadRank),
		errors.Is(err, bench.ErrBadIterations):
		fmt.Fprintln(os.Stderr, "run 'heapbench --help' for usage")
		return exitUsage
	}
	return exitError
}

func runBench(opts *options) (err error) {
	ranks, rankErr := resolveRanks(opts.ranks, opts.maxExp)
	if rankErr != nil {
		return &usageError{rankErr}
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "heapbench"})
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	out := io.Writer(os.Stdout)
	toFile := opts.output != ""
	if toFile {
		f, openErr := os.Create(opts.output)
		if openErr != nil {
			return fmt.Errorf("opening output: %w", openErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("closing output: %w", closeErr)
			}
		}()
		out = f
	}

	tasks := task.Default()
	backends := backend.Default()

	formatter, fmtErr := buildFormatter(opts, out, ranks, tasks, backends, logger, toFile)
	if fmtErr != nil {
		return fmtErr
	}

	cfg := bench.Config{
		Tasks:      opts.tasks,
		Backends:   opts.backends,
		Ranks:      ranks,
		Iterations: opts.iterations,
		Timeout:    time.Duration(opts.timeoutSec * float64(time.Second)),
		Logger:     logger,
	}
	if _, runErr := bench.RunWorkloads(cfg, tasks, backends, formatter); runErr != nil {
		return runErr
	}
	return nil
}

// resolveRanks returns the explicit rank set, or 10^1..10^maxExp when no
// explicit ranks were given.
func resolveRanks(explicit []int, maxExp int) ([]int, error) {
	if len(explicit) > 0 {
		for _, r := range explicit {
			if r <= 0 {
				return nil, fmt.Errorf("rank must be positive, got %d", r)
			}
		}
		return explicit, nil
	}
	if maxExp < 1 {
		return nil, fmt.Errorf("max exponent must be at least 1, got %d", maxExp)
	}
	ranks := make([]int, 0, maxExp)
	rank := 1
	for e := 1; e <= maxExp; e++ {
		rank *= 10
		ranks = append(ranks, rank)
	}
	return ranks, nil
}

func buildFormatter(
	opts *options,
	out io.Writer,
	ranks []int,
	tasks *task.Registry,
	backends *backend.Registry,
	logger *log.Logger,
	toFile bool,
) (bench.Formatter, error) {
	name := opts.format
	if name == "" {
		if toFile {
			name = formatCSV
		} else {
			name = formatCompare
		}
	}

	var progressLogger *log.Logger
	if opts.verbose {
		progressLogger = logger
	}

	switch name {
	case formatCSV:
		var bar *progressbar.ProgressBar
		if toFile && !opts.verbose {
			bar = format.NewProgressBar(totalCells(opts, ranks, tasks, backends))
		}
		return format.NewCSV(out, format.CSVConfig{}, progressLogger, bar), nil

	case formatCompare:
		ids := opts.backends
		if len(ids) == 0 {
			ids = backends.IDs()
		}
		c, err := format.NewCompare(out, ids, ranks, progressLogger)
		if err != nil {
			return nil, &usageError{err}
		}
		return c, nil
	}
	return nil, &usageError{fmt.Errorf("unknown format %q (want csv or compare)", name)}
}

// totalCells sizes the progress bar; unknown identifiers are caught later
// by the orchestrator's fail-fast validation, so counting by length here
// is safe.
func totalCells(opts *options, ranks []int, tasks *task.Registry, backends *backend.Registry) int {
	nt := len(opts.tasks)
	if nt == 0 {
		nt = tasks.Len()
	}
	nb := len(opts.backends)
	if nb == 0 {
		nb = backends.Len()
	}
	return nt * nb * len(ranks)
}
