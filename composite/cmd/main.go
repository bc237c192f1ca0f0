package main

import (
	"fmt"

	"github.com/go-kata/patterns/composite"
)

// The client code works with all the components via their base interface, so
// it does not care whether it holds a leaf or a whole tree.
func clientCode(component composite.Component) {
	fmt.Println("RESULT: " + component.Operation())
}

func main() {
	simple := composite.NewLeaf()
	fmt.Println("Client: I've got a simple component:")
	clientCode(simple)
	fmt.Println()

	tree := composite.NewBranch(
		composite.NewBranch(composite.NewLeaf(), composite.NewLeaf()),
		composite.NewBranch(composite.NewLeaf()),
	)
	fmt.Println("Client: Now I've got a composite tree:")
	clientCode(tree)
	fmt.Println()

	fmt.Println("Client: I don't need to check the components classes even when managing the tree:")
	if tree.IsComposite() {
		tree.Add(simple)
	}
	clientCode(tree)
}
