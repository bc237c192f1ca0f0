package visitor

// ComponentAVisitor visits ConcreteComponentA. Splitting the visitor
// interface per component type lets a visitor opt into only the components
// it cares about.
type ComponentAVisitor interface {
	VisitComponentA(component *ConcreteComponentA) string
}

// ComponentBVisitor visits ConcreteComponentB.
type ComponentBVisitor interface {
	VisitComponentB(component *ConcreteComponentB) string
}

// Visitor visits every component type in the catalogue.
type Visitor interface {
	ComponentAVisitor
	ComponentBVisitor
}

// Component accepts visitors; the Accept implementation picks the visiting
// method matching its own concrete type, which is the second half of the
// double dispatch.
type Component interface {
	Accept(visitor Visitor) string
}

type ConcreteComponentA struct{}

func (c *ConcreteComponentA) Accept(visitor Visitor) string {
	return visitor.VisitComponentA(c)
}

// ExclusiveMethodOfConcreteComponentA exists only on A; visitors reach it
// without type switches.
func (c *ConcreteComponentA) ExclusiveMethodOfConcreteComponentA() string {
	return "A"
}

type ConcreteComponentB struct{}

func (c *ConcreteComponentB) Accept(visitor Visitor) string {
	return visitor.VisitComponentB(c)
}

// SpecialMethodOfConcreteComponentB exists only on B.
func (c *ConcreteComponentB) SpecialMethodOfConcreteComponentB() string {
	return "B"
}

var _ Visitor = (*ConcreteVisitor1)(nil)

type ConcreteVisitor1 struct{}

func (v *ConcreteVisitor1) VisitComponentA(component *ConcreteComponentA) string {
	return component.ExclusiveMethodOfConcreteComponentA() + " + ConcreteVisitor1"
}

func (v *ConcreteVisitor1) VisitComponentB(component *ConcreteComponentB) string {
	return component.SpecialMethodOfConcreteComponentB() + " + ConcreteVisitor1"
}

var _ Visitor = (*ConcreteVisitor2)(nil)

type ConcreteVisitor2 struct{}

func (v *ConcreteVisitor2) VisitComponentA(component *ConcreteComponentA) string {
	return component.ExclusiveMethodOfConcreteComponentA() + " + ConcreteVisitor2"
}

func (v *ConcreteVisitor2) VisitComponentB(component *ConcreteComponentB) string {
	return component.SpecialMethodOfConcreteComponentB() + " + ConcreteVisitor2"
}
