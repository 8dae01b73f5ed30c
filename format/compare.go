package format

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/utkarsh5026/heapbench/bench"
)

var bold = color.New(color.Bold)

// Compare renders one pairwise comparison section per task as soon as the
// task's results are gathered. Finish is a no-op.
//
// The report is only well defined for a single rank: each matrix cell is
// the ratio of two backends' pass rates, which is meaningless when rates
// from different input sizes are mixed. Multi-rank invocations are
// rejected at construction, before any workload runs.
type Compare struct {
	w        io.Writer
	rank     int
	labels   map[string]string
	progress progressLog
}

// NewCompare builds the comparison formatter. backendIDs fixes the label
// mapping up front, in backend processing order, so labels are stable for
// the whole run.
func NewCompare(w io.Writer, backendIDs []string, ranks []int, logger *log.Logger) (*Compare, error) {
	if len(ranks) != 1 {
		return nil, fmt.Errorf("compare format requires exactly one rank, got %d", len(ranks))
	}
	return &Compare{
		w:        w,
		rank:     ranks[0],
		labels:   AbbreviateLabels(backendIDs),
		progress: progressLog{logger: logger},
	}, nil
}

// Labels exposes the fixed identifier-to-label mapping.
func (c *Compare) Labels() map[string]string {
	out := make(map[string]string, len(c.labels))
	for id, label := range c.labels {
		out[id] = label
	}
	return out
}

func (c *Compare) Start() error { return nil }

func (c *Compare) Progress(task, backend string, rank int) {
	c.progress.observe(task, backend, rank)
}

func (c *Compare) Finish(results []bench.Result) error { return nil }

func (c *Compare) Gather(task string, results []bench.Result) error {
	if _, err := bold.Fprintf(c.w, "\n%s (rank %d)\n", task, c.rank); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if len(results) == 0 {
		_, err := fmt.Fprintln(c.w, "  no results")
		return err
	}

	ranked := make([]comparedBackend, 0, len(results))
	for _, r := range results {
		ranked = append(ranked, comparedBackend{
			label: c.labels[r.Backend],
			rate:  rate(r),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].rate > ranked[j].rate
	})

	return renderMatrix(c.w, ranked)
}

type comparedBackend struct {
	label string
	rate  float64
}

// rate is the backend's pass rate for the cell. Within one task and rank
// every pass executes the same operation sequence, so pass-rate ratios
// equal operation-rate ratios.
func rate(r bench.Result) float64 {
	if r.Seconds <= 0 {
		return 0
	}
	return float64(r.Iterations) / r.Seconds
}
