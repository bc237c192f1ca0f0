package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-kata/patterns/adapter"
)

func TestDefaultTarget(t *testing.T) {
	assert.Equal(t, "Target: The default target's behavior.", adapter.DefaultTarget{}.Request())
}

func TestAdapter_Translates(t *testing.T) {
	a := adapter.New(adapter.Adaptee{})
	assert.Equal(t, "Adapter: (TRANSLATED) Special behavior of the Adaptee.", a.Request())
}

func TestAdapter_SatisfiesTarget(t *testing.T) {
	var target adapter.Target = adapter.New(adapter.Adaptee{})
	assert.Contains(t, target.Request(), "TRANSLATED")
}
