package singleton

import "sync"

// Lazy guards a single lazily constructed instance of T.
// The first call to Instance constructs the value under the lock; every later
// call, no matter which goroutine it comes from, returns that same value and
// ignores its own constructor.
//
// The zero Lazy is ready to use and must not be copied after first use.
type Lazy[T any] struct {
	mu       sync.Mutex
	instance T
	created  bool
}

// Instance returns the shared instance, constructing it with init on first use.
func (l *Lazy[T]) Instance(init func() T) T {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.created {
		l.instance = init()
		l.created = true
	}
	return l.instance
}

// Created reports whether the instance has been constructed.
func (l *Lazy[T]) Created() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.created
}
