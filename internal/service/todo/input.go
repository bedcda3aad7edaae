package todo

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// CreateTodoInput holds the parameters for creating a todo item.
type CreateTodoInput struct {
	Description string
	DueAt       time.Time
}

// Validate checks all fields against the given current time and collects
// all errors.
func (i CreateTodoInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	description := strings.TrimSpace(i.Description)
	if description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	// Characters, not bytes: the limit must agree with the char_length
	// check constraint on the table.
	if utf8.RuneCountInString(description) > MaxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if i.DueAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "due_at", Message: "required"})
	} else if !i.DueAt.After(now) {
		errs = append(errs, domain.FieldError{Field: "due_at", Message: "must be in the future"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDescriptionInput holds the parameters for replacing a description.
type UpdateDescriptionInput struct {
	ID          uuid.UUID
	Description string
}

// Validate checks all fields and collects all errors.
func (i UpdateDescriptionInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	description := strings.TrimSpace(i.Description)
	if description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListTodosInput holds the parameters for listing todo items.
// Invalid pagination values are clamped, never rejected.
type ListTodosInput struct {
	IncludeAll bool
	Page       int
	Size       int
}

// normalize clamps page and size into their valid ranges.
// Size 0 means "use the default".
func (i *ListTodosInput) normalize(defaultSize, maxSize int) {
	if i.Size == 0 {
		i.Size = defaultSize
	}
	if i.Size < 1 {
		i.Size = 1
	}
	if i.Size > maxSize {
		i.Size = maxSize
	}
	if i.Page < 0 {
		i.Page = 0
	}
	// Keep page*size representable so the offset never wraps negative.
	if i.Page > math.MaxInt/i.Size {
		i.Page = math.MaxInt / i.Size
	}
}
