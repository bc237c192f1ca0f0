package state

import (
	"fmt"
	"io"
)

// State declares the handlers every concrete state implements. States get a
// back-reference to their Context so they can transition it.
type State interface {
	Handle1()
	Handle2()

	// SetContext stores the back-reference; Context calls it on transition.
	SetContext(ctx *Context)
}

// Context keeps a reference to the current state and delegates requests to
// it. States swap themselves out through TransitionTo.
type Context struct {
	state State
	out   io.Writer
}

func NewContext(out io.Writer, initial State) *Context {
	ctx := &Context{out: out}
	ctx.TransitionTo(initial)
	return ctx
}

// TransitionTo changes the current state at runtime.
func (c *Context) TransitionTo(s State) {
	fmt.Fprintf(c.out, "Context: Transition to %T.\n", s)
	c.state = s
	c.state.SetContext(c)
}

func (c *Context) Request1() {
	c.state.Handle1()
}

func (c *Context) Request2() {
	c.state.Handle2()
}

// base carries the context back-reference for concrete states.
type base struct {
	ctx *Context
}

func (b *base) SetContext(ctx *Context) {
	b.ctx = ctx
}

// ConcreteStateA handles both requests and transitions to B on the first.
type ConcreteStateA struct {
	base
}

func (s *ConcreteStateA) Handle1() {
	fmt.Fprintln(s.ctx.out, "ConcreteStateA handles Request1.")
	fmt.Fprintln(s.ctx.out, "ConcreteStateA wants to change the state of the context.")
	s.ctx.TransitionTo(&ConcreteStateB{})
}

func (s *ConcreteStateA) Handle2() {
	fmt.Fprintln(s.ctx.out, "ConcreteStateA handles Request2.")
}

// ConcreteStateB handles both requests and transitions back to A on the second.
type ConcreteStateB struct {
	base
}

func (s *ConcreteStateB) Handle1() {
	fmt.Fprintln(s.ctx.out, "ConcreteStateB handles Request1.")
}

func (s *ConcreteStateB) Handle2() {
	fmt.Fprintln(s.ctx.out, "ConcreteStateB handles Request2.")
	fmt.Fprintln(s.ctx.out, "ConcreteStateB wants to change the state of the context.")
	s.ctx.TransitionTo(&ConcreteStateA{})
}
