package strategy

import (
	"context"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// SortAscending sorts a copy of the input in natural order.
func SortAscending[E constraints.Ordered]() Strategy[[]E, []E] {
	return Func[[]E, []E](func(_ context.Context, items []E) ([]E, error) {
		sorted := slices.Clone(items)
		slices.SortFunc(sorted, func(a, b E) bool {
			return a < b
		})
		return sorted, nil
	})
}

// SortDescending sorts a copy of the input in reverse order.
func SortDescending[E constraints.Ordered]() Strategy[[]E, []E] {
	return Func[[]E, []E](func(_ context.Context, items []E) ([]E, error) {
		sorted := slices.Clone(items)
		slices.SortFunc(sorted, func(a, b E) bool {
			return a > b
		})
		return sorted, nil
	})
}
