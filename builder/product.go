package builder

import (
	"context"
	"strings"
)

// Product is only sensible to build through a builder when it is rather
// complex and requires extensive configuration.
type Product struct {
	Parts []string `json:"parts"`
}

// List renders the assembled parts in insertion order.
func (p Product) List() string {
	return "Product parts: " + strings.Join(p.Parts, ", ")
}

var _ Builder[Product] = (*PartsBuilder)(nil)

// PartsBuilder assembles a Product part by part. The same builder instance
// can produce entirely different products through different step sequences.
type PartsBuilder struct {
	parts []string
}

func NewPartsBuilder() *PartsBuilder {
	return &PartsBuilder{}
}

func (b *PartsBuilder) PartA() *PartsBuilder {
	b.parts = append(b.parts, "PartA1")
	return b
}

func (b *PartsBuilder) PartB() *PartsBuilder {
	b.parts = append(b.parts, "PartB1")
	return b
}

func (b *PartsBuilder) PartC() *PartsBuilder {
	b.parts = append(b.parts, "PartC1")
	return b
}

// Build hands the product over and resets the builder, so it is ready to
// start assembling the next one.
func (b *PartsBuilder) Build(_ context.Context) (Product, error) {
	product := Product{Parts: b.parts}
	b.parts = nil
	return product, nil
}
