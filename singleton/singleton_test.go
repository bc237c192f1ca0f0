package singleton

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

type registry struct {
	value string
}

func TestLazy_Instance(t *testing.T) {
	var lazy Lazy[*registry]
	assert.False(t, lazy.Created())

	first := lazy.Instance(func() *registry { return &registry{value: "FOO"} })
	assert.True(t, lazy.Created())
	assert.Equal(t, "FOO", first.value)

	second := lazy.Instance(func() *registry { return &registry{value: "BAR"} })
	assert.Same(t, first, second)
	assert.Equal(t, "FOO", second.value)
}

func TestLazy_Instance_Concurrent(t *testing.T) {
	var lazy Lazy[*registry]
	var inits atomic.Int64

	const workers = 32
	instances := make([]*registry, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		i := i
		go func() {
			defer wg.Done()
			instances[i] = lazy.Instance(func() *registry {
				inits.Add(1)
				return &registry{value: fmt.Sprintf("worker-%d", i)}
			})
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, inits.Load())
	for i := 1; i < workers; i++ {
		assert.Same(t, instances[0], instances[i])
	}
}
