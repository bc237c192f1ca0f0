package main

import (
	"fmt"
	"os"

	"github.com/go-kata/patterns/mediator"
)

func main() {
	c1 := mediator.NewComponent1(os.Stdout)
	c2 := mediator.NewComponent2(os.Stdout)
	mediator.NewCoordinator(os.Stdout, c1, c2)

	fmt.Println("Client triggers operation A.")
	c1.DoA()

	fmt.Println()
	fmt.Println("Client triggers operation D.")
	c2.DoD()
}
