package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-kata/patterns/strategy"
)

// The client picks a strategy, the context executes it without knowing which
// variant it holds.
func main() {
	ctx := context.Background()
	holder := strategy.NewContext(strategy.SortAscending[string]())

	data := strings.Split("aecbd", "")

	fmt.Println("Client: Strategy is set to normal sorting.")
	fmt.Println("Context: Sorting data using the strategy (not sure how it'll do it)")
	sorted, _ := holder.Execute(ctx, data)
	fmt.Println(strings.Join(sorted, ""))
	fmt.Println()

	fmt.Println("Client: Strategy is set to reverse sorting.")
	holder.SetStrategy(strategy.SortDescending[string]())
	fmt.Println("Context: Sorting data using the strategy (not sure how it'll do it)")
	sorted, _ = holder.Execute(ctx, data)
	fmt.Println(strings.Join(sorted, ""))
}
