package main

import (
	"fmt"

	"github.com/go-kata/patterns/trampoline"
)

func factorial(n, acc int) trampoline.Trampoline[int] {
	if n <= 1 {
		return trampoline.Done(acc)
	}
	return trampoline.More(func() trampoline.Trampoline[int] {
		return factorial(n-1, acc*n)
	})
}

func main() {
	fmt.Println("factorial(10) =", factorial(10, 1).Get())

	// A million recursive steps, executed as a flat loop.
	steps := 0
	var walk func(n int) trampoline.Trampoline[int]
	walk = func(n int) trampoline.Trampoline[int] {
		if n == 0 {
			return trampoline.Done(steps)
		}
		return trampoline.More(func() trampoline.Trampoline[int] {
			steps++
			return walk(n - 1)
		})
	}
	fmt.Println("steps =", walk(1_000_000).Get())
}
