package main

import (
	"fmt"

	"github.com/go-kata/patterns/adapter"
)

func clientCode(target adapter.Target) {
	fmt.Println(target.Request())
}

func main() {
	fmt.Println("Client: I can work just fine with the Target objects:")
	clientCode(adapter.DefaultTarget{})
	fmt.Println()

	adaptee := adapter.Adaptee{}
	fmt.Println("Client: The Adaptee class has a weird interface. See, I don't understand it:")
	fmt.Println("Adaptee:", adaptee.SpecificRequest())
	fmt.Println()

	fmt.Println("Client: But I can work with it via the Adapter:")
	clientCode(adapter.New(adaptee))
}
