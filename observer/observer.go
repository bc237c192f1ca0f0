package observer

import "sync"

// Observer reacts to events published by a Subject.
//
// A Subject detaches observers by identity, so an observer's type must be
// comparable; wrap plain functions with FuncObserver instead of attaching a
// func type directly.
type Observer interface {
	// OnNotify handles one event.
	OnNotify(event Event) error
}

// FuncObserver wraps an ordinary function in a detachable Observer. Each
// call returns a distinct observer: keep the returned value to detach it.
func FuncObserver(f func(event Event) error) Observer {
	return &funcObserver{f: f}
}

type funcObserver struct {
	f func(event Event) error
}

func (o *funcObserver) OnNotify(event Event) error {
	return o.f(event)
}

// onceObserver fires its wrapped observer at most once, then goes inert.
type onceObserver struct {
	observer Observer
	once     sync.Once
}

func (o *onceObserver) OnNotify(event Event) error {
	var err error
	o.once.Do(func() {
		err = o.observer.OnNotify(event)
	})
	return err
}
