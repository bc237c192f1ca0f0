package main

import (
	"fmt"

	"github.com/go-kata/patterns/visitor"
)

func clientCode(components []visitor.Component, v visitor.Visitor) {
	for _, component := range components {
		fmt.Println(component.Accept(v))
	}
}

func main() {
	components := []visitor.Component{
		&visitor.ConcreteComponentA{},
		&visitor.ConcreteComponentB{},
	}

	fmt.Println("The client code works with all visitors via the base Visitor interface:")
	clientCode(components, &visitor.ConcreteVisitor1{})
	fmt.Println()

	fmt.Println("It allows the same client code to work with different types of visitors:")
	clientCode(components, &visitor.ConcreteVisitor2{})
}
