package todo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Get returns a single todo item by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.TodoItem, error) {
	item, err := s.todos.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get todo item: %w", err)
	}

	return item, nil
}
