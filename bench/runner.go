package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/utkarsh5026/heapbench/backend"
	"github.com/utkarsh5026/heapbench/task"
)

var (
	// ErrTimedOut marks a cell that exceeded its time budget. The cell
	// produces no Result and the run moves on.
	ErrTimedOut = errors.New("cell timed out")

	// ErrBadIterations marks an iteration policy of zero, which selects
	// neither a fixed count nor a seconds floor.
	ErrBadIterations = errors.New("iterations must be non-zero")

	// ErrBadRank marks a non-positive input size.
	ErrBadRank = errors.New("rank must be positive")
)

// Run executes one cell: the task's operation sequence against a fresh
// queue from the backend, repeated per the iteration policy.
//
// A positive iterations value is a fixed repetition count. A negative
// value is a wall-clock floor: the sequence re-runs until at least
// -iterations seconds have elapsed. Queue construction happens inside the
// timed region; backends may have setup costs that matter at small ranks.
//
// The timeout is soft: elapsed time is checked after every completed
// iteration, so the worst-case overrun is one iteration. A cell that
// trips the budget returns ErrTimedOut with no partial credit. Adapter
// errors (and recovered panics) surface as ordinary errors.
func Run(t task.Task, b backend.Backend, rank, iterations int, timeout time.Duration) (Result, error) {
	if rank <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrBadRank, rank)
	}
	if iterations == 0 {
		return Result{}, ErrBadIterations
	}

	var floor time.Duration
	if iterations < 0 {
		floor = time.Duration(-iterations) * time.Second
	}

	start := time.Now()
	done := 0
	for {
		if err := runOnce(t, b, rank); err != nil {
			return Result{}, fmt.Errorf("task %s on %s (rank %d): %w", t.ID(), b.ID(), rank, err)
		}
		done++

		elapsed := time.Since(start)
		if timeout > 0 && elapsed > timeout {
			return Result{}, ErrTimedOut
		}
		if floor > 0 {
			if elapsed >= floor {
				break
			}
			continue
		}
		if done == iterations {
			break
		}
	}

	return Result{
		Task:       t.ID(),
		Backend:    b.ID(),
		Version:    b.Version(),
		Rank:       rank,
		Iterations: done,
		Seconds:    time.Since(start).Seconds(),
	}, nil
}

// runOnce executes a single pass on a fresh queue. Panics from adapter
// libraries are converted to errors so one misbehaving backend cannot
// abort the whole run.
func runOnce(t task.Task, b backend.Backend, rank int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("backend panicked: %v", r)
		}
	}()
	return t.Run(b.New(), rank)
}
