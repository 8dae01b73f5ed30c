package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"

	"github.com/utkarsh5026/heapbench/bench"
)

// progressLog writes advisory progress lines to the diagnostic stream,
// one line per (task, backend) transition and one debug line per cell.
// The previous-cell state lives here explicitly rather than in closures.
type progressLog struct {
	logger      *log.Logger
	prevTask    string
	prevBackend string
}

func (p *progressLog) observe(task, backend string, rank int) {
	if p.logger == nil {
		return
	}
	if task != p.prevTask || backend != p.prevBackend {
		p.logger.Info("benchmarking", "task", task, "backend", backend)
		p.prevTask, p.prevBackend = task, backend
	}
	p.logger.Debug("cell", "task", task, "backend", backend, "rank", rank)
}

// CSVConfig controls the delimiter semantics of the tabular output.
// Zero values fall back to comma fields and newline records.
type CSVConfig struct {
	FieldSep  string
	RecordSep string
}

func (c CSVConfig) fieldSep() string {
	if c.FieldSep == "" {
		return ","
	}
	return c.FieldSep
}

func (c CSVConfig) recordSep() string {
	if c.RecordSep == "" {
		return "\n"
	}
	return c.RecordSep
}

// CSV renders the full result batch at the end of the run: one header row
// plus one data row per result, in production order. Gather is a no-op.
type CSV struct {
	w        io.Writer
	cfg      CSVConfig
	bar      *progressbar.ProgressBar
	progress progressLog
}

// NewCSV builds the tabular formatter. logger enables transition-grouped
// progress lines; bar, if non-nil, advances once per cell. Both are
// advisory and may be nil.
func NewCSV(w io.Writer, cfg CSVConfig, logger *log.Logger, bar *progressbar.ProgressBar) *CSV {
	return &CSV{w: w, cfg: cfg, bar: bar, progress: progressLog{logger: logger}}
}

func (c *CSV) Start() error { return nil }

func (c *CSV) Progress(task, backend string, rank int) {
	if c.bar != nil {
		c.bar.Describe(fmt.Sprintf("%s / %s", task, backend))
		_ = c.bar.Add(1)
	}
	c.progress.observe(task, backend, rank)
}

func (c *CSV) Gather(task string, results []bench.Result) error { return nil }

func (c *CSV) Finish(results []bench.Result) error {
	if c.bar != nil {
		_ = c.bar.Finish()
	}

	header := []string{"Task", "Backend", "Version", "Rank", "Iterations", "Seconds"}
	if err := c.writeRecord(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Task,
			r.Backend,
			r.Version,
			strconv.Itoa(r.Rank),
			strconv.Itoa(r.Iterations),
			strconv.FormatFloat(r.Seconds, 'f', 6, 64),
		}
		if err := c.writeRecord(row); err != nil {
			return err
		}
	}
	return nil
}

func (c *CSV) writeRecord(fields []string) error {
	record := strings.Join(fields, c.cfg.fieldSep()) + c.cfg.recordSep()
	if _, err := io.WriteString(c.w, record); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
