package command

import (
	"context"
	"errors"
)

var (
	ErrNotCommand     = errors.New("command: not implement Command interface")
	ErrNotUndoCommand = errors.New("command: not implement UndoCommand interface")
	ErrNotRedoCommand = errors.New("command: not implement RedoCommand interface")
)

// A Command encapsulates a unit of processing work to be performed.
type Command interface {
	// Execute a unit of processing work to be performed.
	Execute(ctx context.Context) (context.Context, error)
}

// UndoCommand undo a Command.
type UndoCommand interface {
	Undo(ctx context.Context) (context.Context, error)
}

// RedoCommand redo a Command.
type RedoCommand interface {
	Redo(ctx context.Context) (context.Context, error)
}

// The Func type is an adapter to allow the use of ordinary functions as Command.
// If f is a function with the appropriate signature, Func(f) is a Command that calls f.
type Func func(ctx context.Context) (context.Context, error)

// Execute calls f(ctx).
func (f Func) Execute(ctx context.Context) (context.Context, error) {
	return f(ctx)
}

// The UndoFunc type is an adapter to allow the use of ordinary functions as UndoCommand.
type UndoFunc func(ctx context.Context) (context.Context, error)

// Undo calls f(ctx).
func (f UndoFunc) Undo(ctx context.Context) (context.Context, error) {
	return f(ctx)
}

// The RedoFunc type is an adapter to allow the use of ordinary functions as RedoCommand.
type RedoFunc func(ctx context.Context) (context.Context, error)

// Redo calls f(ctx).
func (f RedoFunc) Redo(ctx context.Context) (context.Context, error) {
	return f(ctx)
}

// Reversible bundles a Command with its undo and redo counterparts.
type Reversible struct {
	cmd     Command
	undoCmd UndoCommand
	redoCmd RedoCommand
}

func NewReversible(cmd Command, undoCmd UndoCommand, redoCmd RedoCommand) *Reversible {
	return &Reversible{cmd: cmd, undoCmd: undoCmd, redoCmd: redoCmd}
}

func (r *Reversible) Execute(ctx context.Context) (context.Context, error) {
	if r.cmd == nil {
		return ctx, ErrNotCommand
	}
	return r.cmd.Execute(ctx)
}

func (r *Reversible) Undo(ctx context.Context) (context.Context, error) {
	if r.undoCmd == nil {
		return ctx, ErrNotUndoCommand
	}
	return r.undoCmd.Undo(ctx)
}

func (r *Reversible) Redo(ctx context.Context) (context.Context, error) {
	if r.redoCmd == nil {
		return ctx, ErrNotRedoCommand
	}
	return r.redoCmd.Redo(ctx)
}
