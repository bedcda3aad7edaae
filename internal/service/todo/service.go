package todo

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// MaxDescriptionLen is the upper bound on a todo item description.
const MaxDescriptionLen = 500

type todoRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TodoItem, error)
	Create(ctx context.Context, item *domain.TodoItem) (*domain.TodoItem, error)
	Update(ctx context.Context, item *domain.TodoItem) (*domain.TodoItem, error)
	MarkPastDueBulk(ctx context.Context, cutoff time.Time) (int64, error)
	ListByStatus(ctx context.Context, status domain.Status, limit, offset int) ([]*domain.TodoItem, bool, error)
	ListAll(ctx context.Context, limit, offset int) ([]*domain.TodoItem, bool, error)
}

// Service owns the todo item lifecycle: creation defaults, field-mutation
// legality, completion toggling, and the past-due bulk transition. It is
// stateless and safe for unlimited parallel invocation; all cross-writer
// coordination happens in the repository's version checks.
type Service struct {
	todos todoRepo
	log   *slog.Logger
	pages config.PaginationConfig

	// now is the clock used for creation defaults, due-date validation, and
	// the sweep cutoff. Overridable in tests.
	now func() time.Time
}

// NewService creates a new todo service.
func NewService(
	log *slog.Logger,
	todos todoRepo,
	pages config.PaginationConfig,
) *Service {
	return &Service{
		todos: todos,
		log:   log.With("service", "todo"),
		pages: pages,
		now:   time.Now,
	}
}
