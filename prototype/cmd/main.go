package main

import (
	"fmt"

	"github.com/go-kata/patterns/prototype"
)

type shape struct {
	Name  string  `json:"name"`
	Field float32 `json:"field"`
}

func (s shape) Method(multiplier float32) {
	fmt.Printf("Call Method from %s with field: %v\n", s.Name, s.Field*multiplier)
}

// The client fills a registry with prototypes once, then stamps out copies
// without ever naming a concrete constructor again.
func main() {
	registry := prototype.NewRegistry[shape]()
	registry.Register("PROTOTYPE_1", shape{Name: "PROTOTYPE_1", Field: 50})
	registry.Register("PROTOTYPE_2", shape{Name: "PROTOTYPE_2", Field: 60})

	fmt.Println("Let's create a Prototype 1")
	first, err := registry.Create("PROTOTYPE_1")
	if err != nil {
		fmt.Println(err)
		return
	}
	first.Method(90)

	fmt.Println("Let's create a Prototype 2")
	second, err := registry.Create("PROTOTYPE_2")
	if err != nil {
		fmt.Println(err)
		return
	}
	second.Method(10)
}
