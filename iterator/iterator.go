package iterator

import "errors"

// ErrDone is returned by Next once the iterator is exhausted.
var ErrDone = errors.New("iterator: no more elements")

// Iterator walks the elements of a collection without exposing how the
// collection stores them.
type Iterator[T any] interface {
	// HasNext reports whether Next has another element to return.
	HasNext() bool

	// Next returns the next element, or ErrDone when exhausted.
	Next() (T, error)
}

// Collection is a container that hands out iterators compatible with its
// internal layout.
type Collection[T any] struct {
	items []T
}

func NewCollection[T any](items ...T) *Collection[T] {
	return &Collection[T]{items: items}
}

func (c *Collection[T]) Add(item T) {
	c.items = append(c.items, item)
}

func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Iterator returns a fresh iterator over the collection in insertion order.
func (c *Collection[T]) Iterator() Iterator[T] {
	return &sliceIterator[T]{items: c.items}
}

// ReverseIterator returns a fresh iterator walking the collection backwards.
func (c *Collection[T]) ReverseIterator() Iterator[T] {
	return &reverseIterator[T]{items: c.items, next: len(c.items) - 1}
}

type sliceIterator[T any] struct {
	items []T
	next  int
}

func (it *sliceIterator[T]) HasNext() bool {
	return it.next < len(it.items)
}

func (it *sliceIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrDone
	}
	item := it.items[it.next]
	it.next++
	return item, nil
}

type reverseIterator[T any] struct {
	items []T
	next  int
}

func (it *reverseIterator[T]) HasNext() bool {
	return it.next >= 0
}

func (it *reverseIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrDone
	}
	item := it.items[it.next]
	it.next--
	return item, nil
}
