package format

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// renderMatrix prints the pairwise ratio table for one task. Rows and
// columns are ordered fastest first; cell (i, j) is row i's rate over
// column j's rate, so values above 1.00x read "row beats column".
func renderMatrix(w io.Writer, ranked []comparedBackend) error {
	header := make([]any, 0, len(ranked)+2)
	header = append(header, "Backend", "Runs/sec")
	for _, b := range ranked {
		header = append(header, b.label)
	}

	table := tablewriter.NewWriter(w)
	table.Header(header...)

	for _, row := range ranked {
		cells := make([]string, 0, len(ranked)+2)
		cells = append(cells, row.label, formatRate(row.rate))
		for _, col := range ranked {
			cells = append(cells, formatRatio(row, col))
		}
		if err := table.Append(cells); err != nil {
			return fmt.Errorf("rendering comparison: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering comparison: %w", err)
	}
	return nil
}

func formatRate(rate float64) string {
	if rate >= 100 {
		return fmt.Sprintf("%.0f", rate)
	}
	return fmt.Sprintf("%.2f", rate)
}

func formatRatio(row, col comparedBackend) string {
	if row.label == col.label {
		return "-"
	}
	if col.rate <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", row.rate/col.rate)
}
