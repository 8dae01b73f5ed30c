package format

import (
	"testing"
)

func TestAbbreviateLabels_Basic(t *testing.T) {
	cases := map[string]string{
		"Container.Heap":    "C-H",
		"Gods.BinaryHeap":   "G-B",
		"GoHeaps.Pairing":   "G-P",
		"GoHeaps.Fibonacci": "G-F",
		"Google.BTree":      "G-BT",
	}
	for id, want := range cases {
		got := AbbreviateLabels([]string{id})[id]
		if got != want {
			t.Errorf("%s: expected label %q, got %q", id, want, got)
		}
	}
}

func TestAbbreviateLabels_CollisionSuffixes(t *testing.T) {
	ids := []string{"Gods.BinaryHeap", "Gears.Bucket", "Giant.Bag"}
	labels := AbbreviateLabels(ids)

	if labels["Gods.BinaryHeap"] != "G-B" {
		t.Errorf("first id: expected G-B, got %q", labels["Gods.BinaryHeap"])
	}
	if labels["Gears.Bucket"] != "G-B-2" {
		t.Errorf("second id: expected G-B-2, got %q", labels["Gears.Bucket"])
	}
	if labels["Giant.Bag"] != "G-B-3" {
		t.Errorf("third id: expected G-B-3, got %q", labels["Giant.Bag"])
	}
}

func TestAbbreviateLabels_Injective(t *testing.T) {
	ids := []string{
		"Container.Heap",
		"Gods.BinaryHeap",
		"GoHeaps.Pairing",
		"GoHeaps.Skew",
		"GoHeaps.Leftist",
		"GoHeaps.Fibonacci",
		"Google.BTree",
		"Gears.Bucket",
		"G.B",
		"G.B-2", // pre-collides with a disambiguated label
	}
	labels := AbbreviateLabels(ids)

	seen := make(map[string]string, len(labels))
	for id, label := range labels {
		if prev, dup := seen[label]; dup {
			t.Errorf("label %q assigned to both %q and %q", label, prev, id)
		}
		seen[label] = id
	}
	if len(labels) != len(ids) {
		t.Errorf("expected %d labels, got %d", len(ids), len(labels))
	}
}

func TestAbbreviateLabels_NoUppercaseFallsBack(t *testing.T) {
	labels := AbbreviateLabels([]string{"lowercase.only"})
	if labels["lowercase.only"] != "lowercase.only" {
		t.Errorf("expected identity fallback, got %q", labels["lowercase.only"])
	}
}
