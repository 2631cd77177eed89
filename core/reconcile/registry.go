package reconcile

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is the dispatch table from entity-kind labels to strategies.
type Registry struct {
	mu         sync.RWMutex
	strategies map[Kind]Strategy
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[Kind]Strategy)}
}

// Register adds a strategy. Registering the same kind twice panics.
func (r *Registry) Register(s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[s.Kind()]; exists {
		panic(fmt.Sprintf("reconcile: strategy for %s already registered", s.Kind()))
	}
	r.strategies[s.Kind()] = s
}

// Lookup returns the strategy for kind. Labels match exactly.
func (r *Registry) Lookup(kind Kind) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.strategies[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityKind, string(kind))
	}
	return s, nil
}

// Kinds returns the registered labels in lexical order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.strategies))
	for k := range r.strategies {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
