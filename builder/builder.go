package builder

import "context"

// Builder assembles a T step by step. Implementations are usually stateful
// and should reset themselves after Build so the next product starts blank.
type Builder[T any] interface {
	Build(ctx context.Context) (T, error)
}

// The Func type is an adapter to allow the use of ordinary functions as Builder.
// If f is a function with the appropriate signature, Func(f) is a Builder that calls f.
type Func[T any] func(ctx context.Context) (T, error)

// Build calls f(ctx).
func (f Func[T]) Build(ctx context.Context) (T, error) {
	return f(ctx)
}
