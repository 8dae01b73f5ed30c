// Package format renders gathered benchmark results: a CSV-like table for
// batch output and a per-task pairwise comparison report.
package format

import (
	"fmt"
	"strings"
)

// AbbreviateLabels maps each backend identifier to a short, unique display
// label for comparison tables.
//
// Identifiers are dotted paths of capitalized segments. Each segment is
// reduced to its leading uppercase run ("GoHeaps" -> "G", "BTree" -> "BT")
// and the runs are joined with "-". Identifiers that collapse to the same
// label are disambiguated with "-2", "-3", ... in input order, so the
// mapping is injective over any input set. The returned map is a plain
// value; callers fix it once before printing and reuse it for the run.
func AbbreviateLabels(ids []string) map[string]string {
	labels := make(map[string]string, len(ids))
	seen := make(map[string]bool, len(ids))

	for _, id := range ids {
		label := abbreviate(id)
		if seen[label] {
			base := label
			for n := 2; ; n++ {
				candidate := fmt.Sprintf("%s-%d", base, n)
				if !seen[candidate] {
					label = candidate
					break
				}
			}
		}
		seen[label] = true
		labels[id] = label
	}
	return labels
}

func abbreviate(id string) string {
	var parts []string
	for _, seg := range strings.Split(id, ".") {
		i := 0
		for i < len(seg) && seg[i] >= 'A' && seg[i] <= 'Z' {
			i++
		}
		if i > 0 {
			parts = append(parts, seg[:i])
		}
	}
	if len(parts) == 0 {
		return id
	}
	return strings.Join(parts, "-")
}
