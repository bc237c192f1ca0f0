package observer

import (
	"context"
	"errors"
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/go-leo/gox/slicex"
	syncx "github.com/go-leo/gox/syncx/groupx"
	"github.com/go-leo/gox/syncx/chanx"
)

// Subject maintains observers keyed by event body type and notifies them.
type Subject interface {
	// Attach adds an observer for the event's type at the end of the list.
	Attach(e Event, obs Observer) error

	// AttachFirst adds an observer at the beginning of the list.
	AttachFirst(e Event, obs Observer) error

	// Once adds an observer that is notified at most once.
	Once(e Event, obs Observer) error

	// Detach removes the observer from the event's type, including once
	// registrations of the same observer.
	Detach(e Event, obs Observer) error

	// DetachAll removes every observer for the event's type.
	DetachAll(e Event) error

	// Notify synchronously calls each observer registered for the event's
	// type, in the order they were attached.
	Notify(e Event) error

	// AsyncNotify calls the observers on the configured pool and reports
	// their errors through the returned channel.
	AsyncNotify(e Event) <-chan error

	// Close shuts the subject down gracefully, waiting for in-flight
	// asynchronous notifications.
	Close(ctx context.Context) error
}

// NewSubject returns an empty Subject safe for concurrent use.
func NewSubject(opts ...Option) Subject {
	return &subject{options: newOptions(opts...)}
}

var _ Subject = (*subject)(nil)

type subject struct {
	observerMap sync.Map // reflect.Type -> *[]Observer
	wg          sync.WaitGroup
	inShutdown  atomic.Bool
	options     *options
}

func (s *subject) Attach(e Event, obs Observer) error {
	if err := s.check(e, obs); err != nil {
		return err
	}
	s.spin(e.Type(), func(old []Observer) []Observer {
		observers := make([]Observer, 0, len(old)+1)
		observers = append(observers, old...)
		return append(observers, obs)
	})
	return nil
}

func (s *subject) AttachFirst(e Event, obs Observer) error {
	if err := s.check(e, obs); err != nil {
		return err
	}
	s.spin(e.Type(), func(old []Observer) []Observer {
		return slicex.Prepend(old, obs)
	})
	return nil
}

func (s *subject) Once(e Event, obs Observer) error {
	if err := s.check(e, obs); err != nil {
		return err
	}
	once := &onceObserver{observer: obs}
	s.spin(e.Type(), func(old []Observer) []Observer {
		observers := make([]Observer, 0, len(old)+1)
		observers = append(observers, old...)
		return append(observers, once)
	})
	return nil
}

func (s *subject) Detach(e Event, obs Observer) error {
	if err := s.check(e, obs); err != nil {
		return err
	}
	s.spin(e.Type(), func(old []Observer) []Observer {
		indexes := slicex.IndexesFunc(old, func(attached Observer) bool {
			if attached == obs {
				return true
			}
			if once, ok := attached.(*onceObserver); ok && once.observer == obs {
				return true
			}
			return false
		})
		if len(indexes) <= 0 {
			return old
		}
		return slicex.DeleteAll(old, indexes...)
	})
	return nil
}

func (s *subject) DetachAll(e Event) error {
	if err := s.checkEvent(e); err != nil {
		return err
	}
	if s.shuttingDown() {
		return ErrSubjectClosed
	}
	s.observerMap.Delete(e.Type())
	return nil
}

func (s *subject) Notify(e Event) error {
	if err := s.checkEvent(e); err != nil {
		return err
	}
	if s.shuttingDown() {
		return ErrSubjectClosed
	}
	value, ok := s.observerMap.Load(e.Type())
	if !ok {
		return nil
	}
	observers := *value.(*[]Observer)
	errs := make([]error, 0, len(observers))
	for _, obs := range observers {
		errs = append(errs, obs.OnNotify(e))
	}
	return errors.Join(errs...)
}

func (s *subject) AsyncNotify(e Event) <-chan error {
	if err := s.checkEvent(e); err != nil {
		return failed(err)
	}
	if s.shuttingDown() {
		return failed(ErrSubjectClosed)
	}
	eventType := e.Type()
	value, ok := s.observerMap.Load(eventType)
	if !ok {
		return failed(ErrNoObservers{EventType: eventType})
	}
	observers := *value.(*[]Observer)
	errCs := make([]<-chan error, 0, len(observers))
	for _, obs := range observers {
		obs := obs
		errC := make(chan error, 1)
		s.wg.Add(1)
		err := s.options.Pool.Go(func() {
			defer s.wg.Done()
			defer close(errC)
			if err := obs.OnNotify(e); err != nil {
				errC <- err
			}
		})
		if err != nil {
			s.wg.Done()
			errC <- err
			close(errC)
		}
		errCs = append(errCs, errC)
	}
	return chanx.Combine[error](errCs...)
}

func (s *subject) Close(ctx context.Context) error {
	if s.inShutdown.CompareAndSwap(false, true) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-syncx.WaitNotify(&s.wg):
			return nil
		}
	}
	return ErrSubjectClosed
}

func (s *subject) shuttingDown() bool {
	return s.inShutdown.Load()
}

func (s *subject) check(e Event, obs Observer) error {
	if err := s.checkEvent(e); err != nil {
		return err
	}
	if err := s.checkObserver(obs); err != nil {
		return err
	}
	if s.shuttingDown() {
		return ErrSubjectClosed
	}
	return nil
}

func (s *subject) checkEvent(e Event) error {
	if e == nil {
		return ErrEventNil
	}
	if e.Type() == nil || e.Type().Kind() == reflect.Invalid {
		return ErrEventTypeInvalid
	}
	return nil
}

func (s *subject) checkObserver(obs Observer) error {
	if obs == nil {
		return ErrObserverNil
	}
	if !reflect.TypeOf(obs).Comparable() {
		return ErrObserverIncomparable
	}
	return nil
}

// spin applies update to the observer list of eventType with a
// compare-and-swap loop. Contending goroutines back off exponentially,
// see https://en.wikipedia.org/wiki/Exponential_backoff.
func (s *subject) spin(eventType reflect.Type, update func(old []Observer) []Observer) {
	backoff := 1
	for {
		value, loaded := s.observerMap.Load(eventType)
		if !loaded {
			observers := update(nil)
			if _, raced := s.observerMap.LoadOrStore(eventType, &observers); !raced {
				return
			}
		} else {
			old := value.(*[]Observer)
			observers := update(*old)
			if s.observerMap.CompareAndSwap(eventType, value, &observers) {
				return
			}
		}
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < s.options.MaxBackoff {
			backoff <<= 1
		}
	}
}

func failed(err error) <-chan error {
	errC := make(chan error, 1)
	errC <- err
	close(errC)
	return errC
}
