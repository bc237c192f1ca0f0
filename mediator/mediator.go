package mediator

import (
	"fmt"
	"io"
)

// Mediator receives notifications from components and decides which other
// components react. Components never talk to each other directly.
type Mediator interface {
	Notify(sender any, event string)
}

// component stores the mediator reference shared by all concrete components.
type component struct {
	mediator Mediator
}

func (c *component) SetMediator(m Mediator) {
	c.mediator = m
}

// Component1 implements the A and B operations.
type Component1 struct {
	component
	out io.Writer
}

func NewComponent1(out io.Writer) *Component1 {
	return &Component1{out: out}
}

func (c *Component1) DoA() {
	fmt.Fprintln(c.out, "Component1 does A.")
	c.mediator.Notify(c, "A")
}

func (c *Component1) DoB() {
	fmt.Fprintln(c.out, "Component1 does B.")
	c.mediator.Notify(c, "B")
}

// Component2 implements the C and D operations.
type Component2 struct {
	component
	out io.Writer
}

func NewComponent2(out io.Writer) *Component2 {
	return &Component2{out: out}
}

func (c *Component2) DoC() {
	fmt.Fprintln(c.out, "Component2 does C.")
	c.mediator.Notify(c, "C")
}

func (c *Component2) DoD() {
	fmt.Fprintln(c.out, "Component2 does D.")
	c.mediator.Notify(c, "D")
}

var _ Mediator = (*Coordinator)(nil)

// Coordinator is a concrete mediator: it reacts on A by triggering C, and on
// D by triggering B then C.
type Coordinator struct {
	component1 *Component1
	component2 *Component2
	out        io.Writer
}

func NewCoordinator(out io.Writer, c1 *Component1, c2 *Component2) *Coordinator {
	m := &Coordinator{component1: c1, component2: c2, out: out}
	c1.SetMediator(m)
	c2.SetMediator(m)
	return m
}

func (m *Coordinator) Notify(_ any, event string) {
	switch event {
	case "A":
		fmt.Fprintln(m.out, "Mediator reacts on A and triggers following operations:")
		m.component2.DoC()
	case "D":
		fmt.Fprintln(m.out, "Mediator reacts on D and triggers following operations:")
		m.component1.DoB()
		m.component2.DoC()
	}
}
