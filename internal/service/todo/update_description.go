package todo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// UpdateDescription replaces the description of a mutable item. The write
// carries the version read at the start; a concurrent writer racing on the
// same item makes this fail with domain.ErrConflict instead of silently
// overwriting.
func (s *Service) UpdateDescription(ctx context.Context, input UpdateDescriptionInput) (*domain.TodoItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.todos.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get todo item: %w", err)
	}

	if item.IsImmutable() {
		return nil, fmt.Errorf("todo_item %s: %w", item.ID, domain.ErrImmutable)
	}

	item.Description = strings.TrimSpace(input.Description)

	updated, err := s.todos.Update(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("update todo item: %w", err)
	}

	s.log.InfoContext(ctx, "todo item description updated",
		slog.String("item_id", updated.ID.String()),
	)

	return updated, nil
}
