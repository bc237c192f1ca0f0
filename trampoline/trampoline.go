package trampoline

// Trampoline turns a recursive algorithm into an iterative loop. Get keeps
// calling Jump on the returned Trampoline as long as the instance is a
// More stage, stopping once it reaches a Done stage. The key enabling
// mechanism is that More is lazy: the next stage is a thunk, not a value, so
// the stack never grows with the recursion depth.
type Trampoline[T any] interface {
	// Get iterates the trampoline to completion and returns the result.
	Get() T

	// Jump advances to the next stage.
	Jump() Trampoline[T]

	// Result returns the value of a completed stage.
	Result() T

	// Complete reports whether this is the final stage.
	Complete() bool
}

// Done returns the final stage carrying the result.
func Done[T any](result T) Trampoline[T] {
	return done[T]{result: result}
}

// More returns an intermediate stage that lazily produces the next one.
func More[T any](next func() Trampoline[T]) Trampoline[T] {
	return more[T]{next: next}
}

type done[T any] struct {
	result T
}

func (d done[T]) Get() T              { return d.result }
func (d done[T]) Jump() Trampoline[T] { return d }
func (d done[T]) Result() T           { return d.result }
func (d done[T]) Complete() bool      { return true }

type more[T any] struct {
	next func() Trampoline[T]
}

func (m more[T]) Get() T {
	var stage Trampoline[T] = m
	for !stage.Complete() {
		stage = stage.Jump()
	}
	return stage.Result()
}

func (m more[T]) Jump() Trampoline[T] { return m.next() }

func (m more[T]) Result() T {
	var zero T
	return zero
}

func (m more[T]) Complete() bool { return false }
