package backend

import (
	"github.com/emirpasic/gods/trees/binaryheap"
)

const godsVersion = "v1.18.1"

// godsBackend wraps the gods binary heap. The library has no handle to a
// stored element, so this adapter exposes no decrease-key.
type godsBackend struct{}

func (godsBackend) ID() string      { return "Gods.BinaryHeap" }
func (godsBackend) Version() string { return godsVersion }

func (godsBackend) New() Queue {
	h := binaryheap.NewWith(func(a, b interface{}) int {
		ea, eb := a.(godsEntry), b.(godsEntry)
		switch {
		case ea.priority < eb.priority:
			return -1
		case ea.priority > eb.priority:
			return 1
		case ea.item < eb.item:
			return -1
		case ea.item > eb.item:
			return 1
		}
		return 0
	})
	return &godsQueue{h: h}
}

type godsEntry struct {
	item     int
	priority float64
}

type godsQueue struct {
	h *binaryheap.Heap
}

func (q *godsQueue) Insert(item int, priority float64) {
	q.h.Push(godsEntry{item: item, priority: priority})
}

func (q *godsQueue) ExtractMin() (int, error) {
	v, ok := q.h.Pop()
	if !ok {
		return 0, ErrEmpty
	}
	return v.(godsEntry).item, nil
}

func (q *godsQueue) Len() int { return q.h.Size() }
