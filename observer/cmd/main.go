package main

import (
	"context"
	"fmt"

	"github.com/go-kata/patterns/observer"
)

type headline struct {
	Text string
}

type reader struct {
	number int
}

func (r *reader) OnNotify(e observer.Event) error {
	fmt.Printf("Observer \"%d\": a new message is available --> %s\n", r.number, e.Body().(headline).Text)
	return nil
}

// A news subject with two readers; one unsubscribes halfway through.
func main() {
	subject := observer.NewSubject()
	proto := observer.NewEvent(headline{}, 0)

	first := &reader{number: 1}
	second := &reader{number: 2}
	fmt.Println("Hi, I'm the Observer \"1\"")
	_ = subject.Attach(proto, first)
	fmt.Println("Hi, I'm the Observer \"2\"")
	_ = subject.Attach(proto, second)

	_ = subject.Notify(observer.NewEvent(headline{Text: "Hello World! :D"}, 1))

	fmt.Println("Goodbye, I was the Observer \"1\"")
	_ = subject.Detach(proto, first)

	_ = subject.Notify(observer.NewEvent(headline{Text: "The weather is hot today! :p"}, 2))

	_ = subject.Close(context.Background())
}
