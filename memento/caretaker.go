package memento

import (
	"fmt"
	"io"
)

// Caretaker works with mementos only through their metadata interface. It
// never looks inside the originator's state.
type Caretaker struct {
	originator *Originator
	history    []Memento
	out        io.Writer
}

func NewCaretaker(out io.Writer, originator *Originator) *Caretaker {
	return &Caretaker{originator: originator, out: out}
}

// Backup snapshots the originator's current state onto the history stack.
func (c *Caretaker) Backup() {
	fmt.Fprintln(c.out, "Caretaker: Saving Originator's state...")
	c.history = append(c.history, c.originator.Save())
}

// Undo pops the latest memento and restores from it. With nothing to restore
// it is a no-op. A restore failure discards the broken memento and retries
// with the next one down the stack.
func (c *Caretaker) Undo() {
	if len(c.history) == 0 {
		return
	}
	m := c.history[len(c.history)-1]
	c.history = c.history[:len(c.history)-1]
	fmt.Fprintf(c.out, "Caretaker: Restoring state to: %s\n", m.Name())
	if err := c.originator.Restore(m); err != nil {
		c.Undo()
	}
}

// History returns the stored mementos, oldest first.
func (c *Caretaker) History() []Memento {
	return c.history
}

// ShowHistory lists every stored memento by name.
func (c *Caretaker) ShowHistory() {
	fmt.Fprintln(c.out, "Caretaker: Here's the list of mementos:")
	for _, m := range c.history {
		fmt.Fprintln(c.out, m.Name())
	}
}
