package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// MarkDone transitions an item to DONE and stamps its done time. Calling it
// on an item that is already DONE is an idempotent no-op: the item is
// returned unchanged, with no write and no version churn.
func (s *Service) MarkDone(ctx context.Context, id uuid.UUID) (*domain.TodoItem, error) {
	return s.updateStatus(ctx, id, domain.StatusDone)
}

// MarkNotDone transitions an item back to NOT_DONE and clears its done time.
// Idempotent in the same way as MarkDone.
func (s *Service) MarkNotDone(ctx context.Context, id uuid.UUID) (*domain.TodoItem, error) {
	return s.updateStatus(ctx, id, domain.StatusNotDone)
}

func (s *Service) updateStatus(ctx context.Context, id uuid.UUID, target domain.Status) (*domain.TodoItem, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	item, err := s.todos.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get todo item: %w", err)
	}

	if item.IsImmutable() {
		return nil, fmt.Errorf("todo_item %s: %w", item.ID, domain.ErrImmutable)
	}

	if item.Status == target {
		s.log.DebugContext(ctx, "todo item already in target status",
			slog.String("item_id", item.ID.String()),
			slog.String("status", target.String()),
		)
		return item, nil
	}

	item.Status = target
	if target == domain.StatusDone {
		doneAt := s.now().UTC()
		item.DoneAt = &doneAt
	} else {
		item.DoneAt = nil
	}

	updated, err := s.todos.Update(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("update todo item: %w", err)
	}

	s.log.InfoContext(ctx, "todo item status updated",
		slog.String("item_id", updated.ID.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}
