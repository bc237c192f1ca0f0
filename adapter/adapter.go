package adapter

// Target defines the domain-specific interface used by the client code.
type Target interface {
	Request() string
}

// DefaultTarget is the behavior clients already understand.
type DefaultTarget struct{}

func (DefaultTarget) Request() string {
	return "Target: The default target's behavior."
}

// Adaptee contains some useful behavior, but its interface is incompatible
// with the existing client code.
type Adaptee struct{}

func (Adaptee) SpecificRequest() string {
	return ".eetpadA eht fo roivaheb laicepS"
}

var _ Target = (*Adapter)(nil)

// Adapter makes the Adaptee's interface compatible with Target.
type Adapter struct {
	adaptee Adaptee
}

func New(adaptee Adaptee) *Adapter {
	return &Adapter{adaptee: adaptee}
}

func (a *Adapter) Request() string {
	return "Adapter: (TRANSLATED) " + reverse(a.adaptee.SpecificRequest())
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
