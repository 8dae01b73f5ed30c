package backend

import (
	"github.com/google/btree"
)

const (
	btreeVersion = "v1.1.3"
	btreeDegree  = 16
)

// btreeBackend drives a B-tree as a priority queue: DeleteMin is the
// extract, and decrease-key is delete plus reinsert under the new key.
// A priority map remembers each item's current key so the old tree entry
// can be located.
type btreeBackend struct{}

func (btreeBackend) ID() string      { return "Google.BTree" }
func (btreeBackend) Version() string { return btreeVersion }

func (btreeBackend) New() Queue {
	tr := btree.NewG(btreeDegree, func(a, b btreeEntry) bool {
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		return a.item < b.item
	})
	return &btreeQueue{tr: tr, priorities: make(map[int]float64)}
}

type btreeEntry struct {
	item     int
	priority float64
}

type btreeQueue struct {
	tr         *btree.BTreeG[btreeEntry]
	priorities map[int]float64
}

func (q *btreeQueue) Insert(item int, priority float64) {
	q.tr.ReplaceOrInsert(btreeEntry{item: item, priority: priority})
	q.priorities[item] = priority
}

func (q *btreeQueue) ExtractMin() (int, error) {
	e, ok := q.tr.DeleteMin()
	if !ok {
		return 0, ErrEmpty
	}
	delete(q.priorities, e.item)
	return e.item, nil
}

func (q *btreeQueue) Len() int { return q.tr.Len() }

func (q *btreeQueue) DecreaseKey(item int, priority float64) error {
	old, ok := q.priorities[item]
	if !ok {
		return ErrItemNotFound
	}
	if _, found := q.tr.Delete(btreeEntry{item: item, priority: old}); !found {
		return ErrItemNotFound
	}
	q.tr.ReplaceOrInsert(btreeEntry{item: item, priority: priority})
	q.priorities[item] = priority
	return nil
}
