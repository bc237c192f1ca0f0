package specification

import "context"

// And is satisfied when both left and right are satisfied.
func And[T any](left, right Specification[T]) Specification[T] {
	return Conjunction(left, right)
}

// Or is satisfied when either left or right is satisfied.
func Or[T any](left, right Specification[T]) Specification[T] {
	return Disjunction(left, right)
}

// Not is satisfied when spec is not.
func Not[T any](spec Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		return !spec.IsSatisfiedBy(ctx, t)
	})
}

// Conjunction is satisfied when every given specification is satisfied.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		for _, spec := range specs {
			if !spec.IsSatisfiedBy(ctx, t) {
				return false
			}
		}
		return true
	})
}

// Disjunction is satisfied when at least one given specification is satisfied.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		for _, spec := range specs {
			if spec.IsSatisfiedBy(ctx, t) {
				return true
			}
		}
		return false
	})
}
