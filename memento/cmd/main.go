package main

import (
	"fmt"
	"os"

	"github.com/go-kata/patterns/memento"
)

// The client backs up the originator before each risky operation, then winds
// the state back through the caretaker.
func main() {
	originator := memento.NewOriginator(os.Stdout, "Super-duper-super-puper-super.")
	caretaker := memento.NewCaretaker(os.Stdout, originator)

	caretaker.Backup()
	originator.DoSomething()

	caretaker.Backup()
	originator.DoSomething()

	fmt.Println()
	caretaker.ShowHistory()

	fmt.Println("\nClient: Now, let's rollback!")
	caretaker.Undo()

	fmt.Println("\nClient: Once more!")
	caretaker.Undo()
}
