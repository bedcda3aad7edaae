// Package todo implements the todo item repository using PostgreSQL.
// All coordination between concurrent writers happens here: single-item
// writes are guarded by an optimistic version check, and the past-due sweep
// is a single conditional UPDATE, so no in-process locks are needed.
package todo

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

const table = "todo_items"

var columns = []string{"id", "description", "status", "created_at", "due_at", "done_at", "version"}

// psql builds queries with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides todo item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new todo repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a todo item by primary key.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TodoItem, error) {
	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	item, err := scanItem(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, id)
	}

	return item, nil
}

// ListByStatus returns a page of items with the given status, ordered by id
// for a stable scan. It fetches limit+1 rows to compute hasMore without a
// separate count query.
func (r *Repo) ListByStatus(ctx context.Context, status domain.Status, limit, offset int) ([]*domain.TodoItem, bool, error) {
	query := psql.Select(columns...).From(table).
		Where(sq.Eq{"status": status.String()}).
		OrderBy("id ASC").
		Limit(uint64(limit + 1)).
		Offset(uint64(offset))

	return r.listPage(ctx, query, limit)
}

// ListAll returns a page of items regardless of status, ordered by id.
func (r *Repo) ListAll(ctx context.Context, limit, offset int) ([]*domain.TodoItem, bool, error) {
	query := psql.Select(columns...).From(table).
		OrderBy("id ASC").
		Limit(uint64(limit + 1)).
		Offset(uint64(offset))

	return r.listPage(ctx, query, limit)
}

func (r *Repo) listPage(ctx context.Context, builder sq.SelectBuilder, limit int) ([]*domain.TodoItem, bool, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list todo_items: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.TodoItem, 0, limit)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, false, fmt.Errorf("scan todo_item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("list todo_items: %w", err)
	}

	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}

	return items, hasMore, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new todo item, assigning its id and version 0, and returns
// the persisted row.
func (r *Repo) Create(ctx context.Context, item *domain.TodoItem) (*domain.TodoItem, error) {
	id := item.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(id, item.Description, item.Status.String(), item.CreatedAt, item.DueAt, item.DoneAt, 0).
		Suffix("RETURNING " + allColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanItem(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, id)
	}

	return created, nil
}

// Update writes back an item previously read from the store, compare-and-
// swapping on the version it carried. The version column is incremented on
// success. If the row vanished the caller gets domain.ErrNotFound; if another
// writer bumped the version first, domain.ErrConflict.
func (r *Repo) Update(ctx context.Context, item *domain.TodoItem) (*domain.TodoItem, error) {
	query, args, err := psql.Update(table).
		Set("description", item.Description).
		Set("status", item.Status.String()).
		Set("done_at", item.DoneAt).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": item.ID, "version": item.Version}).
		Suffix("RETURNING " + allColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	updated, err := scanItem(r.pool.QueryRow(ctx, query, args...))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, mapError(err, item.ID)
	}

	// Zero rows matched: either the row is gone or the version moved on.
	if _, getErr := r.GetByID(ctx, item.ID); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("todo_item %s version %d: %w", item.ID, item.Version, domain.ErrConflict)
}

// MarkPastDueBulk transitions every NOT_DONE item whose deadline precedes
// cutoff to PAST_DUE in a single atomic statement, bumping each row's
// version. DoneAt is left untouched. Returns the number of rows changed;
// zero is a normal outcome.
func (r *Repo) MarkPastDueBulk(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := psql.Update(table).
		Set("status", domain.StatusPastDue.String()).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"status": domain.StatusNotDone.String()}).
		Where(sq.Lt{"due_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build bulk update: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("mark past due bulk: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("todo_item %s: %w", id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("todo_item %s: %w", id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("todo_item %s: %w", id, domain.ErrConflict)
		case "23514": // check_violation
			return fmt.Errorf("todo_item %s: %w", id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("todo_item %s: %w", id, err)
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func allColumns() string {
	return "id, description, status, created_at, due_at, done_at, version"
}

// scanItem reads one row in the order of columns.
func scanItem(row pgx.Row) (*domain.TodoItem, error) {
	var (
		item   domain.TodoItem
		status string
	)
	err := row.Scan(
		&item.ID,
		&item.Description,
		&status,
		&item.CreatedAt,
		&item.DueAt,
		&item.DoneAt,
		&item.Version,
	)
	if err != nil {
		return nil, err
	}
	item.Status = domain.Status(status)
	return &item, nil
}
