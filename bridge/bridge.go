package bridge

// Implementation declares the platform-facing side of the bridge. It only
// provides primitive operations; the Abstraction composes them into
// higher-level ones.
type Implementation interface {
	OperationImplementation() string
}

type PlatformA struct{}

func (PlatformA) OperationImplementation() string {
	return "ConcreteImplementationA: Here's the result of the platform A."
}

type PlatformB struct{}

func (PlatformB) OperationImplementation() string {
	return "ConcreteImplementationB: Here's the result of the platform B."
}

// Abstraction holds a reference to an Implementation and delegates the real
// work to it. Both hierarchies vary independently.
type Abstraction struct {
	impl Implementation
}

func NewAbstraction(impl Implementation) *Abstraction {
	return &Abstraction{impl: impl}
}

func (a *Abstraction) Operation() string {
	return "Abstraction: Base operation with:\n" + a.impl.OperationImplementation()
}

// ExtendedAbstraction changes the control logic without touching the
// implementation hierarchy.
type ExtendedAbstraction struct {
	impl Implementation
}

func NewExtendedAbstraction(impl Implementation) *ExtendedAbstraction {
	return &ExtendedAbstraction{impl: impl}
}

func (a *ExtendedAbstraction) Operation() string {
	return "ExtendedAbstraction: Extended operation with:\n" + a.impl.OperationImplementation()
}
