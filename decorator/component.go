package decorator

// Component is the interface the concrete decorators below wrap. Both simple
// components and decorated ones satisfy it, so client code never tells them
// apart.
type Component interface {
	Operation() string
}

// ConcreteComponent provides the default behavior.
type ConcreteComponent struct{}

func (ConcreteComponent) Operation() string {
	return "ConcreteComponent"
}

type operationFunc func() string

func (f operationFunc) Operation() string { return f() }

// Label returns a decorator that tags the wrapped component's result with
// name. Decorators can wrap plain components and other decorators alike.
func Label(name string) Func[Component] {
	return func(component Component) Component {
		return operationFunc(func() string {
			return name + "( " + component.Operation() + " )"
		})
	}
}
