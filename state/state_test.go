package state_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-kata/patterns/state"
)

func TestContext_Transitions(t *testing.T) {
	var buf bytes.Buffer
	ctx := state.NewContext(&buf, &state.ConcreteStateA{})
	ctx.Request1()
	ctx.Request2()

	assert.Equal(t, "Context: Transition to *state.ConcreteStateA.\n"+
		"ConcreteStateA handles Request1.\n"+
		"ConcreteStateA wants to change the state of the context.\n"+
		"Context: Transition to *state.ConcreteStateB.\n"+
		"ConcreteStateB handles Request2.\n"+
		"ConcreteStateB wants to change the state of the context.\n"+
		"Context: Transition to *state.ConcreteStateA.\n",
		buf.String())
}

func TestContext_DelegatesWithoutTransition(t *testing.T) {
	var buf bytes.Buffer
	ctx := state.NewContext(&buf, &state.ConcreteStateA{})
	buf.Reset()

	ctx.Request2()
	assert.Equal(t, "ConcreteStateA handles Request2.\n", buf.String())

	buf.Reset()
	ctx.Request2()
	// Still in A: Request2 never transitions out of it.
	assert.Equal(t, "ConcreteStateA handles Request2.\n", buf.String())
}
