package decorator

// Decorator wraps an object of type T, adding behavior before or after the
// calls it forwards to the wrapped object.
type Decorator[T any] interface {
	// Decorate wraps obj and returns the decorated object.
	Decorate(obj T) T
}

// The Func type is an adapter to allow the use of ordinary functions as Decorator.
// If f is a function with the appropriate signature, Func(f) is a Decorator that calls f.
type Func[T any] func(obj T) T

// Decorate calls f(obj).
func (f Func[T]) Decorate(obj T) T {
	return f(obj)
}

// Chain wraps obj with all the decorators. The first decorator becomes the
// outermost layer, so a call travels decorators[0], decorators[1], ..., obj.
func Chain[T any](obj T, decorators ...Decorator[T]) T {
	for i := len(decorators) - 1; i >= 0; i-- {
		obj = decorators[i].Decorate(obj)
	}
	return obj
}
