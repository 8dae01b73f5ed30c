package backend

import (
	"container/heap"
	"runtime"
)

// containerHeapBackend is the stdlib baseline: container/heap over a slice,
// with an item index map so decrease-key can heap.Fix in place.
type containerHeapBackend struct{}

func (containerHeapBackend) ID() string      { return "Container.Heap" }
func (containerHeapBackend) Version() string { return runtime.Version() }

func (containerHeapBackend) New() Queue {
	return &containerHeapQueue{byItem: make(map[int]*heapNode)}
}

type heapNode struct {
	item     int
	priority float64
	index    int
}

type containerHeapQueue struct {
	nodes  []*heapNode
	byItem map[int]*heapNode
}

func (q *containerHeapQueue) Len() int { return len(q.nodes) }

func (q *containerHeapQueue) Less(i, j int) bool {
	return q.nodes[i].priority < q.nodes[j].priority
}

func (q *containerHeapQueue) Swap(i, j int) {
	q.nodes[i], q.nodes[j] = q.nodes[j], q.nodes[i]
	q.nodes[i].index = i
	q.nodes[j].index = j
}

func (q *containerHeapQueue) Push(x any) {
	n, ok := x.(*heapNode)
	if !ok {
		panic("containerHeapQueue.Push: invalid type assertion")
	}
	n.index = len(q.nodes)
	q.nodes = append(q.nodes, n)
}

func (q *containerHeapQueue) Pop() any {
	old := q.nodes
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	q.nodes = old[:n-1]
	return node
}

func (q *containerHeapQueue) Insert(item int, priority float64) {
	n := &heapNode{item: item, priority: priority}
	q.byItem[item] = n
	heap.Push(q, n)
}

func (q *containerHeapQueue) ExtractMin() (int, error) {
	if len(q.nodes) == 0 {
		return 0, ErrEmpty
	}
	n, ok := heap.Pop(q).(*heapNode)
	if !ok {
		panic("containerHeapQueue.ExtractMin: invalid type assertion")
	}
	delete(q.byItem, n.item)
	return n.item, nil
}

func (q *containerHeapQueue) DecreaseKey(item int, priority float64) error {
	n, ok := q.byItem[item]
	if !ok {
		return ErrItemNotFound
	}
	n.priority = priority
	heap.Fix(q, n.index)
	return nil
}
