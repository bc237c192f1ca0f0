package command

import (
	"context"
	"fmt"
	"io"
)

// Receiver knows how to perform the operations behind the commands. Any
// struct can be a receiver; commands only translate requests into calls on
// it.
type Receiver struct {
	out io.Writer
}

func NewReceiver(out io.Writer) *Receiver {
	return &Receiver{out: out}
}

func (r *Receiver) DoSomething(a string) {
	fmt.Fprintf(r.out, "Receiver: Working on (%s).\n", a)
}

func (r *Receiver) DoSomethingElse(b string) {
	fmt.Fprintf(r.out, "Receiver: Also working on (%s).\n", b)
}

var _ Command = (*SimpleCommand)(nil)

// SimpleCommand implements a trivial operation on its own.
type SimpleCommand struct {
	out     io.Writer
	payload string
}

func NewSimpleCommand(out io.Writer, payload string) *SimpleCommand {
	return &SimpleCommand{out: out, payload: payload}
}

func (cmd *SimpleCommand) Execute(ctx context.Context) (context.Context, error) {
	fmt.Fprintf(cmd.out, "SimpleCommand: See, I can do simple things like printing (%s)\n", cmd.payload)
	return ctx, nil
}

var _ Command = (*ComplexCommand)(nil)

// ComplexCommand delegates the real work to a Receiver.
type ComplexCommand struct {
	receiver *Receiver
	a        string
	b        string
}

func NewComplexCommand(receiver *Receiver, a, b string) *ComplexCommand {
	return &ComplexCommand{receiver: receiver, a: a, b: b}
}

func (cmd *ComplexCommand) Execute(ctx context.Context) (context.Context, error) {
	fmt.Fprintln(cmd.receiver.out, "ComplexCommand: Complex stuff should be done by a receiver object.")
	cmd.receiver.DoSomething(cmd.a)
	cmd.receiver.DoSomethingElse(cmd.b)
	return ctx, nil
}

// Invoker holds commands in its start and finish slots and fires them around
// its own work, without knowing any concrete command or receiver type.
type Invoker struct {
	out      io.Writer
	onStart  Command
	onFinish Command
}

func NewInvoker(out io.Writer) *Invoker {
	return &Invoker{out: out}
}

func (inv *Invoker) SetOnStart(cmd Command) {
	inv.onStart = cmd
}

func (inv *Invoker) SetOnFinish(cmd Command) {
	inv.onFinish = cmd
}

func (inv *Invoker) DoSomethingImportant(ctx context.Context) error {
	fmt.Fprintln(inv.out, "Invoker: Does anybody want something done before I begin?")
	if inv.onStart != nil {
		var err error
		if ctx, err = inv.onStart.Execute(ctx); err != nil {
			return err
		}
	}
	fmt.Fprintln(inv.out, "Invoker: ...doing something really important...")
	fmt.Fprintln(inv.out, "Invoker: Does anybody want something done after I finish?")
	if inv.onFinish != nil {
		if _, err := inv.onFinish.Execute(ctx); err != nil {
			return err
		}
	}
	return nil
}
