package builder

import "context"

// Director executes the building steps in a particular sequence. It is
// optional: the client can always drive the builder directly for a custom
// product.
type Director struct {
	builder *PartsBuilder
}

func NewDirector(builder *PartsBuilder) *Director {
	return &Director{builder: builder}
}

// BuildMinimalViableProduct assembles the smallest product that still works.
func (d *Director) BuildMinimalViableProduct(ctx context.Context) (Product, error) {
	return d.builder.PartA().Build(ctx)
}

// BuildFullFeaturedProduct assembles a product with every part attached.
func (d *Director) BuildFullFeaturedProduct(ctx context.Context) (Product, error) {
	return d.builder.PartA().PartB().PartC().Build(ctx)
}
