package todo

import (
	"context"
	"fmt"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// TodoPage is one page of a listing, carrying the pagination values that
// were actually applied after clamping.
type TodoPage struct {
	Items   []*domain.TodoItem
	Page    int
	Size    int
	HasMore bool
}

// List returns a page of todo items plus a has-more flag. By default only
// NOT_DONE items are returned; IncludeAll lifts the filter. Pagination input
// outside the valid range is clamped, so List never fails on caller input.
func (s *Service) List(ctx context.Context, input ListTodosInput) (*TodoPage, error) {
	input.normalize(s.pages.DefaultPageSize, s.pages.MaxPageSize)

	offset := input.Page * input.Size

	var (
		items   []*domain.TodoItem
		hasMore bool
		err     error
	)
	if input.IncludeAll {
		items, hasMore, err = s.todos.ListAll(ctx, input.Size, offset)
	} else {
		items, hasMore, err = s.todos.ListByStatus(ctx, domain.StatusNotDone, input.Size, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("list todo items: %w", err)
	}

	return &TodoPage{
		Items:   items,
		Page:    input.Page,
		Size:    input.Size,
		HasMore: hasMore,
	}, nil
}
