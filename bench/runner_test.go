package bench

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/utkarsh5026/heapbench/backend"
)

// fakeQueue is a trivial unordered queue so fake cells cost almost nothing.
type fakeQueue struct {
	items []int
}

func (q *fakeQueue) Insert(item int, priority float64) {
	q.items = append(q.items, item)
}

func (q *fakeQueue) ExtractMin() (int, error) {
	if len(q.items) == 0 {
		return 0, backend.ErrEmpty
	}
	item := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]
	return item, nil
}

func (q *fakeQueue) Len() int { return len(q.items) }

// fakeBackend creates fakeQueues and counts how many were built.
type fakeBackend struct {
	id      string
	created int
}

func (b *fakeBackend) ID() string      { return b.id }
func (b *fakeBackend) Version() string { return "v0.0.0-fake" }

func (b *fakeBackend) New() backend.Queue {
	b.created++
	return &fakeQueue{}
}

// fakeTask counts passes and can inject latency, errors, or panics.
type fakeTask struct {
	id    string
	runs  int
	delay time.Duration
	err   error
	panic bool
}

func (t *fakeTask) ID() string { return t.id }

func (t *fakeTask) Run(q backend.Queue, rank int) error {
	t.runs++
	if t.panic {
		panic("injected panic")
	}
	if t.delay > 0 {
		time.Sleep(t.delay)
	}
	if t.err != nil {
		return t.err
	}
	for i := 0; i < rank; i++ {
		q.Insert(i, float64(i))
	}
	return nil
}

func TestRun_FixedIterationCount(t *testing.T) {
	tk := &fakeTask{id: "fake"}
	b := &fakeBackend{id: "Fake.Backend"}

	res, err := Run(tk, b, 10, 5, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Iterations != 5 {
		t.Errorf("expected 5 iterations, got %d", res.Iterations)
	}
	if tk.runs != 5 {
		t.Errorf("expected 5 task passes, got %d", tk.runs)
	}
	if b.created != 5 {
		t.Errorf("expected a fresh queue per iteration, got %d", b.created)
	}
	if res.Task != "fake" || res.Backend != "Fake.Backend" || res.Rank != 10 {
		t.Errorf("result misattributed: %+v", res)
	}
	if res.Seconds < 0 {
		t.Errorf("negative elapsed time: %f", res.Seconds)
	}
}

func TestRun_SecondsFloorPolicy(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping seconds-floor timing test in short mode")
	}

	tk := &fakeTask{id: "fake", delay: 20 * time.Millisecond}
	b := &fakeBackend{id: "Fake.Backend"}

	res, err := Run(tk, b, 1, -1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Seconds < 1.0 {
		t.Errorf("elapsed %f below the 1s floor", res.Seconds)
	}
	if res.Iterations < 2 {
		t.Errorf("expected repeated passes to reach the floor, got %d", res.Iterations)
	}
	if res.Iterations != tk.runs {
		t.Errorf("iteration count %d does not match passes %d", res.Iterations, tk.runs)
	}
}

func TestRun_SoftTimeout(t *testing.T) {
	tk := &fakeTask{id: "slow", delay: 40 * time.Millisecond}
	b := &fakeBackend{id: "Fake.Backend"}

	_, err := Run(tk, b, 1, 100, 10*time.Millisecond)
	if !errors.Is(err, ErrTimedOut) {
		t.Fatalf("expected ErrTimedOut, got %v", err)
	}
	// Soft semantics: the first pass completes before the budget check.
	if tk.runs != 1 {
		t.Errorf("expected exactly 1 pass before abandoning, got %d", tk.runs)
	}
}

func TestRun_TimeoutAppliesToFinalIteration(t *testing.T) {
	// A single pass that overruns the budget must not earn a Result just
	// because no further iterations were requested.
	tk := &fakeTask{id: "slow", delay: 30 * time.Millisecond}
	b := &fakeBackend{id: "Fake.Backend"}

	_, err := Run(tk, b, 1, 1, 5*time.Millisecond)
	if !errors.Is(err, ErrTimedOut) {
		t.Fatalf("expected ErrTimedOut, got %v", err)
	}
}

func TestRun_TaskErrorIsFailure(t *testing.T) {
	sentinel := fmt.Errorf("adapter exploded")
	tk := &fakeTask{id: "bad", err: sentinel}
	b := &fakeBackend{id: "Fake.Backend"}

	_, err := Run(tk, b, 1, 3, 0)
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrTimedOut) {
		t.Fatal("failure misreported as timeout")
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped task error, got %v", err)
	}
}

func TestRun_PanicIsContained(t *testing.T) {
	tk := &fakeTask{id: "panicky", panic: true}
	b := &fakeBackend{id: "Fake.Backend"}

	_, err := Run(tk, b, 1, 1, 0)
	if err == nil {
		t.Fatal("expected an error from a panicking pass")
	}
	if errors.Is(err, ErrTimedOut) {
		t.Fatal("panic misreported as timeout")
	}
}

func TestRun_InvalidInputs(t *testing.T) {
	tk := &fakeTask{id: "fake"}
	b := &fakeBackend{id: "Fake.Backend"}

	if _, err := Run(tk, b, 0, 1, 0); !errors.Is(err, ErrBadRank) {
		t.Errorf("rank 0: expected ErrBadRank, got %v", err)
	}
	if _, err := Run(tk, b, -5, 1, 0); !errors.Is(err, ErrBadRank) {
		t.Errorf("rank -5: expected ErrBadRank, got %v", err)
	}
	if _, err := Run(tk, b, 1, 0, 0); !errors.Is(err, ErrBadIterations) {
		t.Errorf("iterations 0: expected ErrBadIterations, got %v", err)
	}
	if tk.runs != 0 {
		t.Errorf("invalid inputs must not execute the task, got %d passes", tk.runs)
	}
}
