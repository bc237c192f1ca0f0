package flyweight

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// SharedState is the intrinsic state of a flyweight: the part that many
// entities have in common and that is safe to share between them.
type SharedState struct {
	Brand string
	Model string
	Color string
}

func (s SharedState) String() string {
	return "[ " + s.Brand + ", " + s.Model + ", " + s.Color + " ]"
}

func (s SharedState) key() string {
	return strings.Join([]string{s.Brand, s.Model, s.Color}, "_")
}

// UniqueState is the extrinsic state: unique per entity and always supplied
// by the client at call time.
type UniqueState struct {
	Owner  string
	Plates string
}

func (s UniqueState) String() string {
	return "[ " + s.Owner + ", " + s.Plates + " ]"
}

// Flyweight stores the shared portion of the state and accepts the unique
// portion through its method parameters.
type Flyweight struct {
	shared SharedState
}

func (f *Flyweight) SharedState() SharedState {
	return f.shared
}

func (f *Flyweight) Operation(unique UniqueState) string {
	return fmt.Sprintf("Flyweight: Displaying shared (%s) and unique (%s) state.", f.shared, unique)
}

// Factory creates and caches flyweights. Requests for a shared state that is
// already cached return the existing instance.
type Factory struct {
	mu         sync.Mutex
	flyweights map[string]*Flyweight
}

func NewFactory(states ...SharedState) *Factory {
	f := &Factory{flyweights: make(map[string]*Flyweight, len(states))}
	for _, state := range states {
		f.flyweights[state.key()] = &Flyweight{shared: state}
	}
	return f
}

// Flyweight returns the flyweight for state and whether it already existed.
func (f *Factory) Flyweight(state SharedState) (*Flyweight, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fw, ok := f.flyweights[state.key()]; ok {
		return fw, true
	}
	fw := &Flyweight{shared: state}
	f.flyweights[state.key()] = fw
	return fw, false
}

// Count returns the number of distinct flyweights in the cache.
func (f *Factory) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.flyweights)
}

// Keys lists the cache keys in sorted order.
func (f *Factory) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := maps.Keys(f.flyweights)
	slices.Sort(keys)
	return keys
}
