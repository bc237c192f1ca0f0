package specification

import "context"

// Specification is a business rule that a candidate T either satisfies or
// does not. Specifications compose with And, Or and Not into richer rules.
type Specification[T any] interface {

	// IsSatisfiedBy checks whether t satisfies the specification.
	IsSatisfiedBy(ctx context.Context, t T) bool

	// And combines this specification with another one; both must hold.
	And(other Specification[T]) Specification[T]

	// Or combines this specification with another one; either may hold.
	Or(other Specification[T]) Specification[T]

	// Not inverts the specification.
	Not() Specification[T]
}

// New builds a Specification from a predicate.
func New[T any](predicate func(ctx context.Context, t T) bool) Specification[T] {
	return base[T]{predicate: predicate}
}

type base[T any] struct {
	predicate func(ctx context.Context, t T) bool
}

func (spec base[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	return spec.predicate(ctx, t)
}

func (spec base[T]) And(other Specification[T]) Specification[T] {
	return And[T](spec, other)
}

func (spec base[T]) Or(other Specification[T]) Specification[T] {
	return Or[T](spec, other)
}

func (spec base[T]) Not() Specification[T] {
	return Not[T](spec)
}
