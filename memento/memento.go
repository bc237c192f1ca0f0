package memento

import (
	"time"

	"github.com/google/uuid"
)

// Memento exposes snapshot metadata to the caretaker. The captured state
// itself stays private to this package, so only the originator can read it
// back.
type Memento interface {
	// ID is the unique id of the snapshot.
	ID() string

	// Name is a human readable label built from the date and a state preview.
	Name() string

	// Date is the snapshot creation time.
	Date() time.Time

	state() string
}

type snapshot struct {
	id    string
	value string
	date  time.Time
}

func newSnapshot(value string) *snapshot {
	return &snapshot{id: uuid.NewString(), value: value, date: time.Now()}
}

func (s *snapshot) ID() string {
	return s.id
}

func (s *snapshot) Name() string {
	preview := s.value
	if len(preview) > 9 {
		preview = preview[:9]
	}
	return s.date.Format(time.DateTime) + " / (" + preview + "...)"
}

func (s *snapshot) Date() time.Time {
	return s.date
}

func (s *snapshot) state() string {
	return s.value
}
