package main

import (
	"context"
	"fmt"

	"github.com/go-kata/patterns/builder"
)

// The client creates a builder, optionally hands it to a director for the
// canned recipes, then drives it directly for a custom product.
func main() {
	ctx := context.Background()
	b := builder.NewPartsBuilder()
	director := builder.NewDirector(b)

	fmt.Println("Standard basic product:")
	minimal, _ := director.BuildMinimalViableProduct(ctx)
	fmt.Println(minimal.List())
	fmt.Println()

	fmt.Println("Standard full featured product:")
	full, _ := director.BuildFullFeaturedProduct(ctx)
	fmt.Println(full.List())
	fmt.Println()

	// The builder works just as well without a director.
	fmt.Println("Custom product:")
	custom, _ := b.PartA().PartC().Build(ctx)
	fmt.Println(custom.List())
}
