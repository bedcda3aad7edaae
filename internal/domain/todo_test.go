package domain

import (
	"testing"
	"time"
)

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	valid := []Status{StatusNotDone, StatusDone, StatusPastDue}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Status("CANCELLED").IsValid() {
		t.Error("CANCELLED should not be valid")
	}
	if Status("").IsValid() {
		t.Error("empty status should not be valid")
	}
}

func TestStatus_Display(t *testing.T) {
	t.Parallel()

	cases := map[Status]string{
		StatusNotDone: "not done",
		StatusDone:    "done",
		StatusPastDue: "past due",
	}
	for status, want := range cases {
		if got := status.Display(); got != want {
			t.Errorf("%s.Display() = %q, want %q", status, got, want)
		}
	}
}

func TestTodoItem_IsImmutable(t *testing.T) {
	t.Parallel()

	t.Run("not done", func(t *testing.T) {
		t.Parallel()
		item := &TodoItem{Status: StatusNotDone}
		if item.IsImmutable() {
			t.Error("NOT_DONE item should be mutable")
		}
	})

	t.Run("done", func(t *testing.T) {
		t.Parallel()
		now := time.Now()
		item := &TodoItem{Status: StatusDone, DoneAt: &now}
		if item.IsImmutable() {
			t.Error("DONE item should be mutable")
		}
	})

	t.Run("past due", func(t *testing.T) {
		t.Parallel()
		item := &TodoItem{Status: StatusPastDue}
		if !item.IsImmutable() {
			t.Error("PAST_DUE item should be immutable")
		}
	})
}
