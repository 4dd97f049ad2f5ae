package series

import (
	"sort"
	"sync"

	apperrors "github.com/agbru/picalc/internal/errors"
)

// Constructor builds a fresh, initialized worker.
type Constructor func() Worker

// Factory creates workers by kind. Every call to New returns a new instance,
// since workers carry their own running state.
type Factory interface {
	// New returns a fresh worker for kind.
	New(kind Kind) (Worker, error)
	// List returns the registered kinds in sorted order.
	List() []Kind
}

// Registry is the default Factory, safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	ctors map[Kind]Constructor
}

// Verify interface compliance.
var _ Factory = (*Registry)(nil)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[Kind]Constructor)}
}

// NewDefaultFactory returns a registry holding the Leibniz and Nilakantha
// series.
func NewDefaultFactory() *Registry {
	r := NewRegistry()
	r.Register(Leibniz, func() Worker { return NewLeibniz() })
	r.Register(Nilakantha, func() Worker { return NewNilakantha() })
	return r
}

// Register adds or replaces the constructor for kind.
func (r *Registry) Register(kind Kind, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[kind] = ctor
}

// New returns a fresh worker for kind, or a ConfigError for unknown kinds.
func (r *Registry) New(kind Kind) (Worker, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, apperrors.NewConfigError("unknown series %q", kind)
	}
	return ctor(), nil
}

// List returns the registered kinds in sorted order.
func (r *Registry) List() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]Kind, 0, len(r.ctors))
	for k := range r.ctors {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Next returns the kind following current in List order, wrapping around.
// An unregistered current yields the first kind.
func Next(f Factory, current Kind) (Kind, error) {
	kinds := f.List()
	if len(kinds) == 0 {
		return "", apperrors.NewConfigError("no series registered")
	}
	for i, k := range kinds {
		if k == current {
			return kinds[(i+1)%len(kinds)], nil
		}
	}
	return kinds[0], nil
}
