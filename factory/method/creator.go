package main

import "fmt"

// Creator declares the factory method. The creator's primary responsibility
// is not creating products; it contains business logic that relies on Product
// objects returned by the factory method.
type Creator interface {
	CreateProduct() Product
}

type ConcreteCreator1 struct{}

func (ConcreteCreator1) CreateProduct() Product {
	return ConcreteProduct1{}
}

type ConcreteCreator2 struct{}

func (ConcreteCreator2) CreateProduct() Product {
	return ConcreteProduct2{}
}

// SomeOperation works with an instance of a concrete product, via the
// factory method, without knowing which concrete creator it was handed.
func SomeOperation(creator Creator) string {
	product := creator.CreateProduct()
	return fmt.Sprintf("Creator: The same creator's code has just worked with %s", product.Operation())
}
