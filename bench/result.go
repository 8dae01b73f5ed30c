// Package bench is the benchmark execution core: the timed runner that
// measures one (task, backend, rank) cell, and the workload orchestrator
// that drives the full matrix and feeds results to a formatter.
package bench

// Result is the recorded timing outcome of one successfully completed
// cell. It is created exactly once per cell and never mutated.
type Result struct {
	Task       string
	Backend    string
	Version    string
	Rank       int
	Iterations int
	Seconds    float64
}

// Formatter receives the orchestrator's output. Progress fires before
// every cell regardless of outcome; Gather fires once per task with that
// task's successful results; Finish receives the full ordered batch.
type Formatter interface {
	Start() error
	Progress(task, backend string, rank int)
	Gather(task string, results []Result) error
	Finish(results []Result) error
}
