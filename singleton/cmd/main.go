package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-kata/patterns/singleton"
)

type database struct {
	value string
}

var shared singleton.Lazy[*database]

// instance returns the process-wide database, creating it with value if no
// goroutine has created it yet.
func instance(value string) *database {
	return shared.Instance(func() *database {
		return &database{value: value}
	})
}

func worker(value string) {
	time.Sleep(10 * time.Millisecond)
	db := instance(value)
	fmt.Println(db.value)
}

// Two goroutines race to initialize the singleton. Whichever wins, both print
// the same value: either "FOO" twice or "BAR" twice, never one of each.
func main() {
	fmt.Println("If you see the same value, then singleton was reused (yay!)")
	fmt.Println("If you see different values, then 2 singletons were created (booo!!)")
	fmt.Println()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		worker("FOO")
	}()
	go func() {
		defer wg.Done()
		worker("BAR")
	}()
	wg.Wait()
}
