package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/utkarsh5026/heapbench/bench"
)

func TestNewCompare_RejectsMultipleRanks(t *testing.T) {
	var buf bytes.Buffer
	ids := []string{"Container.Heap", "Gods.BinaryHeap"}

	if _, err := NewCompare(&buf, ids, []int{10, 100}, nil); err == nil {
		t.Fatal("expected an error for two ranks")
	}
	if _, err := NewCompare(&buf, ids, nil, nil); err == nil {
		t.Fatal("expected an error for zero ranks")
	}
	if _, err := NewCompare(&buf, ids, []int{10}, nil); err != nil {
		t.Fatalf("single rank rejected: %v", err)
	}
}

func TestCompare_LabelsFixedUpFront(t *testing.T) {
	var buf bytes.Buffer
	ids := []string{"Gods.BinaryHeap", "Gears.Bucket"}

	c, err := NewCompare(&buf, ids, []int{10}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	labels := c.Labels()
	if labels["Gods.BinaryHeap"] != "G-B" || labels["Gears.Bucket"] != "G-B-2" {
		t.Errorf("unexpected label mapping: %v", labels)
	}
}

func TestCompare_GatherRendersMatrix(t *testing.T) {
	var buf bytes.Buffer
	ids := []string{"Container.Heap", "Gods.BinaryHeap"}

	c, err := NewCompare(&buf, ids, []int{10}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	results := []bench.Result{
		{Task: "insert-only", Backend: "Container.Heap", Rank: 10, Iterations: 10, Seconds: 2.0}, // 5 runs/sec
		{Task: "insert-only", Backend: "Gods.BinaryHeap", Rank: 10, Iterations: 10, Seconds: 1.0}, // 10 runs/sec
	}
	if err := c.Gather("insert-only", results); err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "insert-only") {
		t.Error("section title missing task id")
	}
	for _, label := range []string{"C-H", "G-B"} {
		if !strings.Contains(out, label) {
			t.Errorf("output missing label %q:\n%s", label, out)
		}
	}
	// The faster backend is twice the slower one in some cell.
	if !strings.Contains(out, "2.00x") {
		t.Errorf("output missing expected 2.00x ratio:\n%s", out)
	}
	if !strings.Contains(out, "0.50x") {
		t.Errorf("output missing expected 0.50x ratio:\n%s", out)
	}
}

func TestCompare_GatherEmptyResults(t *testing.T) {
	var buf bytes.Buffer

	c, err := NewCompare(&buf, []string{"Container.Heap"}, []int{10}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Gather("decrease-key", nil); err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if !strings.Contains(buf.String(), "no results") {
		t.Errorf("expected a no-results note, got %q", buf.String())
	}
}

func TestCompare_FinishIsNoOp(t *testing.T) {
	var buf bytes.Buffer

	c, err := NewCompare(&buf, []string{"Container.Heap"}, []int{10}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Finish(sampleResults()); err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("finish wrote output: %q", buf.String())
	}
}
