package memento

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-leo/gox/mathx/randx"
)

// ErrForeignMemento is returned when the originator is asked to restore from
// a memento it did not produce.
var ErrForeignMemento = errors.New("memento: not produced by this originator")

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Originator holds some important state that may change over time. It knows
// how to capture that state inside a memento and how to restore it from one.
type Originator struct {
	state string
	out   io.Writer
}

func NewOriginator(out io.Writer, state string) *Originator {
	fmt.Fprintf(out, "Originator: My initial state is: %s\n", state)
	return &Originator{state: state, out: out}
}

// DoSomething is the business logic; it scrambles the state, which is why
// clients back it up first.
func (o *Originator) DoSomething() {
	fmt.Fprintln(o.out, "Originator: I'm doing something important.")
	o.state = randomString(30)
	fmt.Fprintf(o.out, "Originator: and my state has changed to: %s\n", o.state)
}

// Save captures the current state inside a memento.
func (o *Originator) Save() Memento {
	return newSnapshot(o.state)
}

// Restore brings the originator back to the state captured in m.
func (o *Originator) Restore(m Memento) error {
	if m == nil {
		return ErrForeignMemento
	}
	if _, ok := m.(*snapshot); !ok {
		return ErrForeignMemento
	}
	o.state = m.state()
	fmt.Fprintf(o.out, "Originator: My state has changed to: %s\n", o.state)
	return nil
}

// State exposes the current state for verification.
func (o *Originator) State() string {
	return o.state
}

func randomString(length int) string {
	chars := make([]byte, length)
	for i := range chars {
		chars[i] = alphabet[randx.Int63n(int64(len(alphabet)))]
	}
	return string(chars)
}
