package strategy

import (
	"context"
	"errors"
)

// ErrStrategyNotSet is returned by Context.Execute before a strategy is set.
var ErrStrategyNotSet = errors.New("strategy: strategy is not set")

// Strategy is one interchangeable variant of an algorithm taking T and
// producing R.
type Strategy[T any, R any] interface {
	Do(ctx context.Context, t T) (R, error)
}

// The Func type is an adapter to allow the use of ordinary functions as Strategy.
// If f is a function with the appropriate signature, Func(f) is a Strategy that calls f.
type Func[T any, R any] func(ctx context.Context, t T) (R, error)

// Do calls f(ctx, t).
func (f Func[T, R]) Do(ctx context.Context, t T) (R, error) {
	return f(ctx, t)
}

// Context delegates the work to the strategy it currently holds. It does not
// know how the strategy does the work, and the strategy can be swapped at
// runtime.
type Context[T any, R any] struct {
	strategy Strategy[T, R]
}

func NewContext[T any, R any](strategy Strategy[T, R]) *Context[T, R] {
	return &Context[T, R]{strategy: strategy}
}

func (c *Context[T, R]) SetStrategy(strategy Strategy[T, R]) {
	c.strategy = strategy
}

func (c *Context[T, R]) Execute(ctx context.Context, t T) (R, error) {
	if c.strategy == nil {
		var zero R
		return zero, ErrStrategyNotSet
	}
	return c.strategy.Do(ctx, t)
}
