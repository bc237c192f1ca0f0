package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-kata/patterns/bridge"
)

func TestAbstraction_Operation(t *testing.T) {
	a := bridge.NewAbstraction(bridge.PlatformA{})
	assert.Equal(t,
		"Abstraction: Base operation with:\nConcreteImplementationA: Here's the result of the platform A.",
		a.Operation())
}

func TestExtendedAbstraction_Operation(t *testing.T) {
	a := bridge.NewExtendedAbstraction(bridge.PlatformB{})
	assert.Equal(t,
		"ExtendedAbstraction: Extended operation with:\nConcreteImplementationB: Here's the result of the platform B.",
		a.Operation())
}

func TestHierarchiesVaryIndependently(t *testing.T) {
	impls := []bridge.Implementation{bridge.PlatformA{}, bridge.PlatformB{}}
	for _, impl := range impls {
		assert.Contains(t, bridge.NewAbstraction(impl).Operation(), impl.OperationImplementation())
		assert.Contains(t, bridge.NewExtendedAbstraction(impl).Operation(), impl.OperationImplementation())
	}
}
