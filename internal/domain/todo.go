package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a todo item.
type Status string

const (
	StatusNotDone Status = "NOT_DONE"
	StatusDone    Status = "DONE"
	StatusPastDue Status = "PAST_DUE"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusNotDone, StatusDone, StatusPastDue:
		return true
	}
	return false
}

// Display returns the human-readable form used on the wire:
// "not done", "done", "past due".
func (s Status) Display() string {
	switch s {
	case StatusNotDone:
		return "not done"
	case StatusDone:
		return "done"
	case StatusPastDue:
		return "past due"
	}
	return string(s)
}

// TodoItem is a single todo entry.
//
// Version is a monotonically incrementing revision counter bumped by the
// repository on every successful write; it backs the optimistic concurrency
// check. ID, CreatedAt and DueAt are write-once. DoneAt is non-nil exactly
// when Status == DONE.
type TodoItem struct {
	ID          uuid.UUID
	Description string
	Status      Status
	CreatedAt   time.Time
	DueAt       time.Time
	DoneAt      *time.Time
	Version     int64
}

// IsPastDue reports whether the item reached the terminal PAST_DUE state.
func (t *TodoItem) IsPastDue() bool {
	return t.Status == StatusPastDue
}

// IsImmutable reports whether the item rejects all further mutation.
// PAST_DUE is terminal: only the reconciler's bulk transition ever moves an
// item there, and nothing moves it out.
func (t *TodoItem) IsImmutable() bool {
	return t.IsPastDue()
}
