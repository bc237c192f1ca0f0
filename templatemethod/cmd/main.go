package main

import (
	"fmt"

	"github.com/go-kata/patterns/templatemethod"
)

func clientCode(steps templatemethod.Steps) {
	for _, line := range templatemethod.Run(steps) {
		fmt.Println(line)
	}
}

func main() {
	fmt.Println("Same client code can work with different subclasses:")
	clientCode(templatemethod.ConcreteClass1{})
	fmt.Println()

	fmt.Println("Same client code can work with different subclasses:")
	clientCode(templatemethod.ConcreteClass2{})
}
