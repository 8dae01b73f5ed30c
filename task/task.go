// Package task defines the benchmark workloads: each task is one fixed
// sequence of queue operations parameterized by the input size (rank).
//
// Workloads draw priorities from a rank-seeded generator, so every
// iteration and every backend executes an identical operation sequence.
package task

import (
	"fmt"
	"math/rand"

	"github.com/utkarsh5026/heapbench/backend"
)

// Task is one benchmark operation sequence. Run performs a single full
// pass against the given queue; it must leave no state behind that a
// following pass could observe, since the harness hands it a fresh queue
// every time.
type Task interface {
	ID() string
	Run(q backend.Queue, rank int) error
}

// Registry is a fixed, ordered set of tasks keyed by identifier.
type Registry struct {
	order []string
	byID  map[string]Task
}

// NewRegistry builds a registry from the given tasks.
// Duplicate identifiers indicate a wiring bug and panic.
func NewRegistry(tasks ...Task) *Registry {
	r := &Registry{byID: make(map[string]Task, len(tasks))}
	for _, t := range tasks {
		if _, dup := r.byID[t.ID()]; dup {
			panic(fmt.Sprintf("task registered twice: %s", t.ID()))
		}
		r.order = append(r.order, t.ID())
		r.byID[t.ID()] = t
	}
	return r
}

// IDs returns all registered identifiers in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Lookup returns the task registered under id.
func (r *Registry) Lookup(id string) (Task, bool) {
	t, ok := r.byID[id]
	return t, ok
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int {
	return len(r.order)
}

// Default returns the registry of all built-in workloads.
func Default() *Registry {
	return NewRegistry(
		opsTask{id: "insert-only", run: runInsertOnly},
		opsTask{id: "insert-extract-all", run: runInsertExtractAll},
		opsTask{id: "interleaved", run: runInterleaved},
		opsTask{id: "decrease-key", run: runDecreaseKey},
	)
}

type opsTask struct {
	id  string
	run func(q backend.Queue, rank int) error
}

func (t opsTask) ID() string { return t.id }

func (t opsTask) Run(q backend.Queue, rank int) error {
	return t.run(q, rank)
}

// seeded returns the priority source for one pass. Seeding from the rank
// keeps the sequence identical across iterations and backends.
func seeded(rank int) *rand.Rand {
	return rand.New(rand.NewSource(int64(rank)))
}

// runInsertOnly inserts rank items with pseudo-random priorities.
func runInsertOnly(q backend.Queue, rank int) error {
	rng := seeded(rank)
	for i := 0; i < rank; i++ {
		q.Insert(i, rng.Float64()*float64(rank))
	}
	return nil
}

// runInsertExtractAll inserts rank items, then extracts until empty.
func runInsertExtractAll(q backend.Queue, rank int) error {
	rng := seeded(rank)
	for i := 0; i < rank; i++ {
		q.Insert(i, rng.Float64()*float64(rank))
	}
	for i := 0; i < rank; i++ {
		if _, err := q.ExtractMin(); err != nil {
			return fmt.Errorf("extract %d of %d: %w", i+1, rank, err)
		}
	}
	return nil
}

// runInterleaved prefills half the rank, then alternates insert and
// extract so the queue stays near half full for the rest of the pass.
func runInterleaved(q backend.Queue, rank int) error {
	rng := seeded(rank)
	half := rank / 2
	for i := 0; i < half; i++ {
		q.Insert(i, rng.Float64()*float64(rank))
	}
	for i := half; i < rank; i++ {
		if i%2 == 0 {
			q.Insert(i, rng.Float64()*float64(rank))
			continue
		}
		if _, err := q.ExtractMin(); err != nil {
			return fmt.Errorf("interleaved extract at op %d: %w", i, err)
		}
	}
	return nil
}

// runDecreaseKey inserts rank items in a high priority band, lowers every
// fourth key into a lower band, then drains. Backends without decrease-key
// fail the pass up front.
func runDecreaseKey(q backend.Queue, rank int) error {
	dk, ok := q.(backend.DecreaseKeyer)
	if !ok {
		return fmt.Errorf("decrease-key task: %w", backend.ErrNoDecreaseKey)
	}

	rng := seeded(rank)
	span := float64(rank)
	for i := 0; i < rank; i++ {
		q.Insert(i, span+rng.Float64()*span)
	}
	for i := 0; i < rank; i += 4 {
		if err := dk.DecreaseKey(i, rng.Float64()*span); err != nil {
			return fmt.Errorf("decrease-key item %d: %w", i, err)
		}
	}
	for i := 0; i < rank; i++ {
		if _, err := q.ExtractMin(); err != nil {
			return fmt.Errorf("drain %d of %d: %w", i+1, rank, err)
		}
	}
	return nil
}
