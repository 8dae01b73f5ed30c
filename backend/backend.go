// Package backend defines the priority-queue adapter surface and the
// static registry of queue implementations under test.
//
// Every adapter wraps one concrete queue library behind the same minimal
// operation set (create, insert, extract-min, optional decrease-key) so the
// benchmark core can drive them interchangeably. Adapters that support
// lowering a key additionally implement DecreaseKeyer; capability is
// discovered with a type assertion.
package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by ExtractMin when the queue holds no items.
	ErrEmpty = errors.New("extract-min on empty queue")

	// ErrNoDecreaseKey marks an operation requested on a backend that
	// cannot lower keys in place.
	ErrNoDecreaseKey = errors.New("backend does not support decrease-key")

	// ErrItemNotFound is returned by DecreaseKey when the item is not in
	// the queue.
	ErrItemNotFound = errors.New("item not in queue")
)

// Queue is one live priority-queue instance. Items are identified by an
// integer payload; lower priority values are extracted first. Item
// identifiers must be unique within a queue instance for decrease-key to
// be well defined.
type Queue interface {
	Insert(item int, priority float64)
	ExtractMin() (int, error)
	Len() int
}

// DecreaseKeyer is implemented by queues that can lower the priority of an
// item already in the queue. The new priority must not be greater than the
// current one.
type DecreaseKeyer interface {
	DecreaseKey(item int, priority float64) error
}

// Backend couples a stable identifier and a version string with a factory
// for fresh, empty queue instances. Implementations are immutable.
type Backend interface {
	ID() string
	Version() string
	New() Queue
}

// Registry is a fixed, ordered set of backends keyed by identifier.
// Order is registration order; it determines iteration order in the
// benchmark matrix and label assignment in comparison output.
type Registry struct {
	order []string
	byID  map[string]Backend
}

// NewRegistry builds a registry from the given backends.
// Duplicate identifiers indicate a wiring bug and panic.
func NewRegistry(backends ...Backend) *Registry {
	r := &Registry{byID: make(map[string]Backend, len(backends))}
	for _, b := range backends {
		if _, dup := r.byID[b.ID()]; dup {
			panic(fmt.Sprintf("backend registered twice: %s", b.ID()))
		}
		r.order = append(r.order, b.ID())
		r.byID[b.ID()] = b
	}
	return r
}

// IDs returns all registered identifiers in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Lookup returns the backend registered under id.
func (r *Registry) Lookup(id string) (Backend, bool) {
	b, ok := r.byID[id]
	return b, ok
}

// Len returns the number of registered backends.
func (r *Registry) Len() int {
	return len(r.order)
}

// Default returns the registry of all built-in adapters.
func Default() *Registry {
	return NewRegistry(
		containerHeapBackend{},
		godsBackend{},
		goHeapsPairing{},
		goHeapsSkew{},
		goHeapsLeftist{},
		goHeapsFibonacci{},
		btreeBackend{},
	)
}

// SupportsDecreaseKey reports whether fresh queues from b implement
// DecreaseKeyer. It probes a throwaway instance so callers do not need to
// construct one themselves.
func SupportsDecreaseKey(b Backend) bool {
	_, ok := b.New().(DecreaseKeyer)
	return ok
}
