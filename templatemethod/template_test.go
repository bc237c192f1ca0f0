package templatemethod_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-kata/patterns/templatemethod"
)

func TestRun_DefaultHooks(t *testing.T) {
	lines := templatemethod.Run(templatemethod.ConcreteClass1{})
	assert.Equal(t, []string{
		"AbstractClass says: I'm doing the bulk of the work.",
		"ConcreteClass1 says: Implemented Operation1.",
		"AbstractClass says: But I let subclasses override some operations.",
		"ConcreteClass1 says: Implemented Operation2.",
		"AbstractClass says: But I'm doing the bulk of the work anyway.",
	}, lines)
}

func TestRun_OverriddenHook(t *testing.T) {
	lines := templatemethod.Run(templatemethod.ConcreteClass2{})
	assert.Contains(t, lines, "ConcreteClass2 says: Overridden Hook1.")
	// The hook slots in between the two required operations.
	assert.Equal(t, "ConcreteClass2 says: Implemented Operation1.", lines[1])
	assert.Equal(t, "ConcreteClass2 says: Overridden Hook1.", lines[3])
	assert.Equal(t, "ConcreteClass2 says: Implemented Operation2.", lines[4])
}

type recordingSteps struct {
	calls []string
}

func (r *recordingSteps) RequiredOperation1() string {
	r.calls = append(r.calls, "op1")
	return "op1"
}

func (r *recordingSteps) RequiredOperation2() string {
	r.calls = append(r.calls, "op2")
	return "op2"
}

func (r *recordingSteps) Hook1() string {
	r.calls = append(r.calls, "hook1")
	return "hook1"
}

func (r *recordingSteps) Hook2() string {
	r.calls = append(r.calls, "hook2")
	return "hook2"
}

func TestRun_CallOrder(t *testing.T) {
	steps := &recordingSteps{}
	templatemethod.Run(steps)
	assert.Equal(t, []string{"op1", "hook1", "op2", "hook2"}, steps.calls)
}
