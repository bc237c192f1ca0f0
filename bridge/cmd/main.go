package main

import (
	"fmt"

	"github.com/go-kata/patterns/bridge"
)

// The client only depends on the abstraction side of the bridge.
func main() {
	abstraction := bridge.NewAbstraction(bridge.PlatformA{})
	fmt.Println(abstraction.Operation())
	fmt.Println()

	extended := bridge.NewExtendedAbstraction(bridge.PlatformB{})
	fmt.Println(extended.Operation())
}
