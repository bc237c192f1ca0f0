package memento

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginator_SaveRestore(t *testing.T) {
	var buf bytes.Buffer
	originator := NewOriginator(&buf, "Super-duper-super-puper-super.")

	saved := originator.Save()
	originator.DoSomething()
	assert.NotEqual(t, "Super-duper-super-puper-super.", originator.State())

	require.NoError(t, originator.Restore(saved))
	assert.Equal(t, "Super-duper-super-puper-super.", originator.State())
}

func TestOriginator_RestoreForeign(t *testing.T) {
	var buf bytes.Buffer
	originator := NewOriginator(&buf, "state")
	assert.ErrorIs(t, originator.Restore(nil), ErrForeignMemento)
}

func TestCaretaker_Undo(t *testing.T) {
	var buf bytes.Buffer
	originator := NewOriginator(&buf, "first")
	caretaker := NewCaretaker(&buf, originator)

	caretaker.Backup()
	originator.DoSomething()
	caretaker.Backup()
	originator.DoSomething()

	caretaker.Undo()
	caretaker.Undo()
	assert.Equal(t, "first", originator.State())
	assert.Empty(t, caretaker.History())

	// Undo with an empty history changes nothing.
	caretaker.Undo()
	assert.Equal(t, "first", originator.State())
}

func TestMemento_Metadata(t *testing.T) {
	var buf bytes.Buffer
	originator := NewOriginator(&buf, "Super-duper-super-puper-super.")
	m := originator.Save()

	assert.NotEmpty(t, m.ID())
	assert.False(t, m.Date().IsZero())
	assert.Contains(t, m.Name(), "(Super-dup...)")

	other := originator.Save()
	assert.NotEqual(t, m.ID(), other.ID())
}
