package observer

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrEventNil the event is nil.
	ErrEventNil = errors.New("observer: event is nil")

	// ErrEventTypeInvalid the event body has no usable type.
	ErrEventTypeInvalid = errors.New("observer: event type is invalid")

	// ErrObserverNil the observer is nil.
	ErrObserverNil = errors.New("observer: observer is nil")

	// ErrObserverIncomparable the observer cannot be detached later because
	// its type is not comparable.
	ErrObserverIncomparable = errors.New("observer: observer is incomparable")

	// ErrSubjectClosed the subject is closed.
	ErrSubjectClosed = errors.New("observer: subject is closed")
)

// ErrNoObservers reports an async notification for an event type nobody is
// attached to.
type ErrNoObservers struct {
	EventType reflect.Type
}

func (e ErrNoObservers) Error() string {
	return fmt.Sprintf("observer: no observers attached for %s", e.EventType)
}
