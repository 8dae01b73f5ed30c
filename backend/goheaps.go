package backend

import (
	goheap "github.com/theodesp/go-heaps"
	"github.com/theodesp/go-heaps/fibonacci"
	"github.com/theodesp/go-heaps/leftist"
	"github.com/theodesp/go-heaps/pairing"
	"github.com/theodesp/go-heaps/skew"
)

const goHeapsVersion = "v0.0.0-20190520121037"

// heapEntry adapts an (item, priority) pair to the go-heaps Item interface.
// Ordering is by priority with the item id as tie-breaker so Compare is a
// total order and node lookup by equality stays unambiguous.
type heapEntry struct {
	item     int
	priority float64
}

func (e *heapEntry) Compare(than goheap.Item) int {
	o := than.(*heapEntry)
	switch {
	case e.priority < o.priority:
		return -1
	case e.priority > o.priority:
		return 1
	case e.item < o.item:
		return -1
	case e.item > o.item:
		return 1
	}
	return 0
}

// meldableHeap is the operation surface shared by the go-heaps variants
// without usable node handles (skew, leftist, fibonacci).
type meldableHeap interface {
	Insert(v goheap.Item) goheap.Item
	DeleteMin() goheap.Item
}

type meldableQueue struct {
	h    meldableHeap
	size int
}

func (q *meldableQueue) Insert(item int, priority float64) {
	q.h.Insert(&heapEntry{item: item, priority: priority})
	q.size++
}

func (q *meldableQueue) ExtractMin() (int, error) {
	// DeleteMin on the wrapped heaps dereferences a nil root, so
	// emptiness is tracked here rather than probed in the library.
	if q.size == 0 {
		return 0, ErrEmpty
	}
	v := q.h.DeleteMin()
	q.size--
	return v.(*heapEntry).item, nil
}

func (q *meldableQueue) Len() int { return q.size }

type goHeapsSkew struct{}

func (goHeapsSkew) ID() string      { return "GoHeaps.Skew" }
func (goHeapsSkew) Version() string { return goHeapsVersion }

// skew.New seeds the heap with a sentinel node holding a nil Item, which
// the first Insert would hand to Compare. The zero value is the empty heap.
func (goHeapsSkew) New() Queue { return &meldableQueue{h: &skew.SkewHeap{}} }

type goHeapsLeftist struct{}

func (goHeapsLeftist) ID() string      { return "GoHeaps.Leftist" }
func (goHeapsLeftist) Version() string { return goHeapsVersion }
func (goHeapsLeftist) New() Queue      { return &meldableQueue{h: leftist.New()} }

// goHeapsPairing wraps the pairing heap. Adjust gives it decrease-key:
// the adapter keeps an item -> entry map so the current node value can be
// located for replacement.
type goHeapsPairing struct{}

func (goHeapsPairing) ID() string      { return "GoHeaps.Pairing" }
func (goHeapsPairing) Version() string { return goHeapsVersion }

func (goHeapsPairing) New() Queue {
	return &pairingQueue{h: pairing.New(), entries: make(map[int]*heapEntry)}
}

type pairingQueue struct {
	h       *pairing.PairHeap
	entries map[int]*heapEntry
	size    int
}

func (q *pairingQueue) Insert(item int, priority float64) {
	e := &heapEntry{item: item, priority: priority}
	q.h.Insert(e)
	q.entries[item] = e
	q.size++
}

func (q *pairingQueue) ExtractMin() (int, error) {
	v := q.h.DeleteMin()
	if v == nil {
		return 0, ErrEmpty
	}
	e := v.(*heapEntry)
	delete(q.entries, e.item)
	q.size--
	return e.item, nil
}

func (q *pairingQueue) Len() int { return q.size }

func (q *pairingQueue) DecreaseKey(item int, priority float64) error {
	old, ok := q.entries[item]
	if !ok {
		return ErrItemNotFound
	}
	repl := &heapEntry{item: item, priority: priority}
	if q.h.Adjust(old, repl) == nil {
		return ErrItemNotFound
	}
	q.entries[item] = repl
	return nil
}

// goHeapsFibonacci wraps the fibonacci heap. The library's decrease-key
// operates on its unexported node type, so the adapter cannot expose one.
type goHeapsFibonacci struct{}

func (goHeapsFibonacci) ID() string      { return "GoHeaps.Fibonacci" }
func (goHeapsFibonacci) Version() string { return goHeapsVersion }
func (goHeapsFibonacci) New() Queue      { return &meldableQueue{h: fibonacci.New()} }
