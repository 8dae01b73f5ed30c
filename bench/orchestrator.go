package bench

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/utkarsh5026/heapbench/backend"
	"github.com/utkarsh5026/heapbench/task"
)

var (
	// ErrUnknownTask marks a requested task id with no registration.
	ErrUnknownTask = errors.New("unknown task")

	// ErrUnknownBackend marks a requested backend id with no registration.
	ErrUnknownBackend = errors.New("unknown backend")

	// ErrNoRanks marks an empty rank set.
	ErrNoRanks = errors.New("at least one rank is required")
)

// Config carries the resolved options for one full run.
type Config struct {
	// Tasks and Backends select subsets by identifier; empty means all
	// registered, in registration order.
	Tasks    []string
	Backends []string

	// Ranks is the non-empty set of input sizes, iterated innermost.
	Ranks []int

	// Iterations is the per-cell policy: positive for a fixed count,
	// negative for a seconds floor.
	Iterations int

	// Timeout is the per-cell soft budget; zero disables it.
	Timeout time.Duration

	// Logger receives the diagnostic stream (timeouts, failures).
	// Nil discards it.
	Logger *log.Logger
}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.New(io.Discard)
}

// RunWorkloads drives the full (task x backend x rank) matrix.
//
// Nesting is fixed: tasks outer, backends middle, ranks inner. Ranks vary
// fastest within one (task, backend) pair so a slow backend can be
// abandoned by the per-cell timeout without abandoning the others.
//
// Selection against the registries is validated before any cell executes;
// an unknown identifier fails the whole invocation up front. Per-cell
// timeouts and failures are logged and skipped, never fatal.
//
// The formatter sees Progress before every cell, Gather once per task
// with that task's successful results, and Finish with the complete
// ordered batch, which is also returned.
func RunWorkloads(cfg Config, tasks *task.Registry, backends *backend.Registry, f Formatter) ([]Result, error) {
	selTasks, err := selectTasks(cfg.Tasks, tasks)
	if err != nil {
		return nil, err
	}
	selBackends, err := selectBackends(cfg.Backends, backends)
	if err != nil {
		return nil, err
	}
	if len(cfg.Ranks) == 0 {
		return nil, ErrNoRanks
	}
	for _, r := range cfg.Ranks {
		if r <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrBadRank, r)
		}
	}
	if cfg.Iterations == 0 {
		return nil, ErrBadIterations
	}

	logger := cfg.logger()
	if err := f.Start(); err != nil {
		return nil, err
	}

	var all []Result
	for _, t := range selTasks {
		perTask := make([]Result, 0, len(selBackends)*len(cfg.Ranks))
		for _, b := range selBackends {
			for _, rank := range cfg.Ranks {
				f.Progress(t.ID(), b.ID(), rank)

				res, err := Run(t, b, rank, cfg.Iterations, cfg.Timeout)
				switch {
				case err == nil:
					perTask = append(perTask, res)
					all = append(all, res)
				case errors.Is(err, ErrTimedOut):
					logger.Warn("cell timed out",
						"task", t.ID(), "backend", b.ID(), "rank", rank,
						"timeout", cfg.Timeout)
				default:
					logger.Error("cell failed",
						"task", t.ID(), "backend", b.ID(), "rank", rank,
						"err", err)
				}
			}
		}
		if err := f.Gather(t.ID(), perTask); err != nil {
			return all, err
		}
	}

	if err := f.Finish(all); err != nil {
		return all, err
	}
	return all, nil
}

func selectTasks(ids []string, reg *task.Registry) ([]task.Task, error) {
	if len(ids) == 0 {
		ids = reg.IDs()
	}
	sel := make([]task.Task, 0, len(ids))
	for _, id := range ids {
		t, ok := reg.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTask, id)
		}
		sel = append(sel, t)
	}
	return sel, nil
}

func selectBackends(ids []string, reg *backend.Registry) ([]backend.Backend, error) {
	if len(ids) == 0 {
		ids = reg.IDs()
	}
	sel := make([]backend.Backend, 0, len(ids))
	for _, id := range ids {
		b, ok := reg.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, id)
		}
		sel = append(sel, b)
	}
	return sel, nil
}
