package main

import (
	"fmt"

	"github.com/go-kata/patterns/iterator"
)

type data struct {
	value int
}

// The client may or may not know the concrete iterator type; the generic
// container works with ints and custom structs alike.
func main() {
	fmt.Println("Iterator with (int):")
	numbers := iterator.NewCollection[int]()
	for i := 0; i < 10; i++ {
		numbers.Add(i)
	}
	for it := numbers.Iterator(); it.HasNext(); {
		n, _ := it.Next()
		fmt.Println(n)
	}

	fmt.Println("Iterator with (custom struct):")
	records := iterator.NewCollection(data{100}, data{1000}, data{10000})
	for it := records.Iterator(); it.HasNext(); {
		record, _ := it.Next()
		fmt.Println(record.value)
	}
}
