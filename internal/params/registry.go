package params

import (
	"fmt"
	"sync"
)

// Registry maps parameter keys to their definitions. It is populated before
// the first Resolve call and treated as immutable afterwards, so concurrent
// reads need no synchronization. Register itself is not safe for concurrent
// use; callers that register outside startup must synchronize externally.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register inserts or replaces the definition stored under its key. Last
// write wins.
func (r *Registry) Register(def Definition) {
	r.defs[def.Key] = def
}

// Lookup returns the definition for key, or ErrUnknownParameter when the key
// was never registered.
func (r *Registry) Lookup(key string) (Definition, error) {
	def, ok := r.defs[key]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", ErrUnknownParameter, key)
	}
	return def, nil
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry holding the pipeline's parameter
// catalogue. It is built exactly once and never mutated afterwards.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, def := range catalogue {
			defaultRegistry.Register(def)
		}
	})
	return defaultRegistry
}
