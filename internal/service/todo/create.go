package todo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Create creates a new todo item. Status, creation time, and done time are
// forced regardless of caller-supplied values: every item starts NOT_DONE
// with a nil done time.
func (s *Service) Create(ctx context.Context, input CreateTodoInput) (*domain.TodoItem, error) {
	now := s.now()

	if err := input.Validate(now); err != nil {
		return nil, err
	}

	item, err := s.todos.Create(ctx, &domain.TodoItem{
		Description: strings.TrimSpace(input.Description),
		Status:      domain.StatusNotDone,
		CreatedAt:   now.UTC(),
		DueAt:       input.DueAt.UTC(),
		DoneAt:      nil,
	})
	if err != nil {
		return nil, fmt.Errorf("create todo item: %w", err)
	}

	s.log.InfoContext(ctx, "todo item created",
		slog.String("item_id", item.ID.String()),
		slog.Time("due_at", item.DueAt),
	)

	return item, nil
}
