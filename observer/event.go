package observer

import (
	"context"
	"reflect"
	"time"
)

// Event carries a notification from a subject to its observers. Observers
// are registered per body type, see Subject.
type Event interface {

	// When returns the time of the event.
	When() time.Time

	// ID returns the id of the event.
	ID() any

	// Body returns the body of the event.
	Body() any

	// Type returns the body's reflect.Type of the event.
	Type() reflect.Type

	// WithContext returns a shallow copy of the event with its context
	// changed to ctx. The provided ctx must be non-nil.
	WithContext(ctx context.Context) Event

	// Context returns the context of the event. To change the context,
	// use WithContext.
	Context() context.Context
}

type event struct {
	body       any
	id         any
	occurredOn time.Time
	ctx        context.Context
}

func NewEvent(body any, id any) Event {
	return &event{body: body, id: id, occurredOn: time.Now()}
}

func (e *event) When() time.Time {
	return e.occurredOn
}

func (e *event) ID() any {
	return e.id
}

func (e *event) Body() any {
	return e.body
}

func (e *event) Type() reflect.Type {
	return reflect.TypeOf(e.body)
}

func (e *event) WithContext(ctx context.Context) Event {
	if ctx == nil {
		panic("nil context")
	}
	copied := new(event)
	*copied = *e
	copied.ctx = ctx
	return copied
}

func (e *event) Context() context.Context {
	if e.ctx != nil {
		return e.ctx
	}
	return context.Background()
}
