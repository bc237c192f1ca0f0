package main

import (
	"fmt"

	"github.com/go-kata/patterns/flyweight"
)

func listFlyweights(factory *flyweight.Factory) {
	fmt.Printf("\nFlyweightFactory: I have %d flyweights:\n", factory.Count())
	for _, key := range factory.Keys() {
		fmt.Println(key)
	}
}

func addCarToPoliceDatabase(factory *flyweight.Factory, plates, owner, brand, model, color string) {
	fmt.Println("\nClient: Adding a car to database.")
	fw, hit := factory.Flyweight(flyweight.SharedState{Brand: brand, Model: model, Color: color})
	if hit {
		fmt.Println("FlyweightFactory: Reusing existing flyweight.")
	} else {
		fmt.Println("FlyweightFactory: Can't find a flyweight, creating a new one.")
	}
	fmt.Println(fw.Operation(flyweight.UniqueState{Owner: owner, Plates: plates}))
}

// The client usually preloads the factory with the flyweights it expects to
// need, then supplies only the extrinsic state per entity.
func main() {
	factory := flyweight.NewFactory(
		flyweight.SharedState{Brand: "Chevrolet", Model: "Camaro", Color: "pink"},
		flyweight.SharedState{Brand: "Mercedes Benz", Model: "C300", Color: "black"},
		flyweight.SharedState{Brand: "Mercedes Benz", Model: "C500", Color: "red"},
		flyweight.SharedState{Brand: "BMW", Model: "M5", Color: "red"},
		flyweight.SharedState{Brand: "BMW", Model: "X6", Color: "white"},
	)
	listFlyweights(factory)

	addCarToPoliceDatabase(factory, "CL234IR", "James Doe", "BMW", "M5", "red")
	addCarToPoliceDatabase(factory, "CL234IR", "James Doe", "BMW", "X1", "red")

	listFlyweights(factory)
}
