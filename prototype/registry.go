package prototype

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownPrototype is returned by Registry.Create for names that were
// never registered.
var ErrUnknownPrototype = errors.New("prototype: unknown prototype")

// Registry keeps named prototype instances and hands out deep copies of
// them, so clients never touch the registered originals.
type Registry[T any] struct {
	mu         sync.RWMutex
	prototypes map[string]T
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{prototypes: make(map[string]T)}
}

// Register stores proto under name, replacing any previous prototype.
func (r *Registry[T]) Register(name string, proto T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prototypes[name] = proto
}

// Create returns a clone of the prototype registered under name.
func (r *Registry[T]) Create(name string) (T, error) {
	r.mu.RLock()
	proto, ok := r.prototypes[name]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrUnknownPrototype, name)
	}
	return Clone(proto)
}
