package main

import "fmt"

func clientCode(creator Creator) {
	fmt.Println("Client: I'm not aware of the creator's class, but it still works.")
	fmt.Println(SomeOperation(creator))
}

func main() {
	fmt.Println("App: Launched with the ConcreteCreator1.")
	clientCode(ConcreteCreator1{})
	fmt.Println()

	fmt.Println("App: Launched with the ConcreteCreator2.")
	clientCode(ConcreteCreator2{})
}
