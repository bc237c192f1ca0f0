package templatemethod

// Steps declares the primitive operations a concrete class must supply. The
// skeleton in Run fills in everything around them.
type Steps interface {
	RequiredOperation1() string
	RequiredOperation2() string
}

// Hook1 is an optional step executed between the two required operations.
// Implementations that return an empty string contribute nothing.
type Hook1 interface {
	Hook1() string
}

// Hook2 is an optional step executed at the very end of the template.
type Hook2 interface {
	Hook2() string
}

// Run is the template method: it fixes the skeleton of the algorithm and
// lets steps fill in the variable parts. It returns the narration lines in
// execution order.
func Run(steps Steps) []string {
	lines := []string{
		"AbstractClass says: I'm doing the bulk of the work.",
		steps.RequiredOperation1(),
		"AbstractClass says: But I let subclasses override some operations.",
	}
	if hook, ok := steps.(Hook1); ok {
		if line := hook.Hook1(); line != "" {
			lines = append(lines, line)
		}
	}
	lines = append(lines,
		steps.RequiredOperation2(),
		"AbstractClass says: But I'm doing the bulk of the work anyway.",
	)
	if hook, ok := steps.(Hook2); ok {
		if line := hook.Hook2(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ConcreteClass1 implements only the required operations and inherits the
// default (empty) hooks.
type ConcreteClass1 struct{}

func (ConcreteClass1) RequiredOperation1() string {
	return "ConcreteClass1 says: Implemented Operation1."
}

func (ConcreteClass1) RequiredOperation2() string {
	return "ConcreteClass1 says: Implemented Operation2."
}

// ConcreteClass2 overrides the first hook in addition to the required
// operations.
type ConcreteClass2 struct{}

func (ConcreteClass2) RequiredOperation1() string {
	return "ConcreteClass2 says: Implemented Operation1."
}

func (ConcreteClass2) RequiredOperation2() string {
	return "ConcreteClass2 says: Implemented Operation2."
}

func (ConcreteClass2) Hook1() string {
	return "ConcreteClass2 says: Overridden Hook1."
}
