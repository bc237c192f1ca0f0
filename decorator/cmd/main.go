package main

import (
	"fmt"

	"github.com/go-kata/patterns/decorator"
)

func clientCode(component decorator.Component) {
	fmt.Println("RESULT: " + component.Operation())
}

func main() {
	simple := decorator.ConcreteComponent{}
	fmt.Println("Client: I've got a simple component:")
	clientCode(simple)
	fmt.Println()

	// Decorators wrap simple components and other decorators alike.
	decorated := decorator.Chain[decorator.Component](simple,
		decorator.Label("ConcreteDecoratorB"),
		decorator.Label("ConcreteDecoratorA"),
	)
	fmt.Println("Client: Now I've got a decorated component:")
	clientCode(decorated)
}
