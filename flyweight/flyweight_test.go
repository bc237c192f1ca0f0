package flyweight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-kata/patterns/flyweight"
)

func TestFactory_Reuses(t *testing.T) {
	state := flyweight.SharedState{Brand: "BMW", Model: "M5", Color: "red"}
	factory := flyweight.NewFactory(state)

	fw, hit := factory.Flyweight(flyweight.SharedState{Brand: "BMW", Model: "M5", Color: "red"})
	assert.True(t, hit)
	assert.Equal(t, state, fw.SharedState())
	assert.Equal(t, 1, factory.Count())

	again, hit := factory.Flyweight(state)
	assert.True(t, hit)
	assert.Same(t, fw, again)
}

func TestFactory_CreatesOnMiss(t *testing.T) {
	factory := flyweight.NewFactory(
		flyweight.SharedState{Brand: "BMW", Model: "M5", Color: "red"},
	)

	fw, hit := factory.Flyweight(flyweight.SharedState{Brand: "BMW", Model: "X1", Color: "red"})
	assert.False(t, hit)
	assert.NotNil(t, fw)
	assert.Equal(t, 2, factory.Count())
}

func TestFactory_KeysSorted(t *testing.T) {
	factory := flyweight.NewFactory(
		flyweight.SharedState{Brand: "Chevrolet", Model: "Camaro", Color: "pink"},
		flyweight.SharedState{Brand: "BMW", Model: "X6", Color: "white"},
		flyweight.SharedState{Brand: "BMW", Model: "M5", Color: "red"},
	)
	assert.Equal(t, []string{
		"BMW_M5_red",
		"BMW_X6_white",
		"Chevrolet_Camaro_pink",
	}, factory.Keys())
}

func TestFlyweight_Operation(t *testing.T) {
	factory := flyweight.NewFactory()
	fw, _ := factory.Flyweight(flyweight.SharedState{Brand: "BMW", Model: "M5", Color: "red"})
	got := fw.Operation(flyweight.UniqueState{Owner: "James Doe", Plates: "CL234IR"})
	assert.Equal(t,
		"Flyweight: Displaying shared ([ BMW, M5, red ]) and unique ([ James Doe, CL234IR ]) state.",
		got)
}
