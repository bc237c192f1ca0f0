package main

import (
	"context"
	"os"

	"github.com/go-kata/patterns/command"
)

// The client parameterizes the invoker with commands: a simple one and a
// complex one delegating to a receiver.
func main() {
	invoker := command.NewInvoker(os.Stdout)
	invoker.SetOnStart(command.NewSimpleCommand(os.Stdout, "Say Hi!"))

	receiver := command.NewReceiver(os.Stdout)
	invoker.SetOnFinish(command.NewComplexCommand(receiver, "Send email", "Save report"))

	if err := invoker.DoSomethingImportant(context.Background()); err != nil {
		os.Exit(1)
	}
}
