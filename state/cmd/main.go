package main

import (
	"os"

	"github.com/go-kata/patterns/state"
)

func main() {
	ctx := state.NewContext(os.Stdout, &state.ConcreteStateA{})
	ctx.Request1()
	ctx.Request2()
}
