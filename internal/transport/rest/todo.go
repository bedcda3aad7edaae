package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/internal/service/todo"
)

// todoService defines the minimal interface needed by TodoHandler.
type todoService interface {
	Create(ctx context.Context, input todo.CreateTodoInput) (*domain.TodoItem, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.TodoItem, error)
	List(ctx context.Context, input todo.ListTodosInput) (*todo.TodoPage, error)
	UpdateDescription(ctx context.Context, input todo.UpdateDescriptionInput) (*domain.TodoItem, error)
	MarkDone(ctx context.Context, id uuid.UUID) (*domain.TodoItem, error)
	MarkNotDone(ctx context.Context, id uuid.UUID) (*domain.TodoItem, error)
}

// TodoHandler serves todo item REST endpoints.
type TodoHandler struct {
	svc todoService
	log *slog.Logger
}

// NewTodoHandler creates a TodoHandler.
func NewTodoHandler(svc todoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, log: logger.With("handler", "todo")}
}

type createTodoRequest struct {
	Description string    `json:"description"`
	DueTime     time.Time `json:"dueTime"`
}

type updateDescriptionRequest struct {
	Description string `json:"description"`
}

type todoResponse struct {
	ID           string     `json:"id"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	CreationTime time.Time  `json:"creationTime"`
	DueTime      time.Time  `json:"dueTime"`
	DoneTime     *time.Time `json:"doneTime,omitempty"`
}

type todoPageResponse struct {
	Content []todoResponse `json:"content"`
	Page    int            `json:"page"`
	Size    int            `json:"size"`
	HasNext bool           `json:"hasNext"`
}

// Create handles POST /v1/todos.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.Create(r.Context(), todo.CreateTodoInput{
		Description: req.Description,
		DueAt:       req.DueTime,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTodoResponse(item))
}

// Get handles GET /v1/todos/{id}.
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodoResponse(item))
}

// List handles GET /v1/todos. Pagination parameters outside the valid
// range are clamped by the service, never rejected; unparseable values
// fall back to the defaults.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	includeAll, _ := strconv.ParseBool(q.Get("includeAll"))
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("size"))

	result, err := h.svc.List(r.Context(), todo.ListTodosInput{
		IncludeAll: includeAll,
		Page:       page,
		Size:       size,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	content := make([]todoResponse, 0, len(result.Items))
	for _, item := range result.Items {
		content = append(content, toTodoResponse(item))
	}

	writeJSON(w, http.StatusOK, todoPageResponse{
		Content: content,
		Page:    result.Page,
		Size:    result.Size,
		HasNext: result.HasMore,
	})
}

// UpdateDescription handles PATCH /v1/todos/{id}/description.
func (h *TodoHandler) UpdateDescription(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.UpdateDescription(r.Context(), todo.UpdateDescriptionInput{
		ID:          id,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodoResponse(item))
}

// MarkDone handles PATCH /v1/todos/{id}/done.
func (h *TodoHandler) MarkDone(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.MarkDone(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodoResponse(item))
}

// MarkNotDone handles PATCH /v1/todos/{id}/not-done.
func (h *TodoHandler) MarkNotDone(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.MarkNotDone(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodoResponse(item))
}

func (h *TodoHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "todo item not found")
	case errors.Is(err, domain.ErrImmutable):
		writeError(w, http.StatusConflict, "item is past due and immutable")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "concurrent modification, re-read and retry")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func toTodoResponse(item *domain.TodoItem) todoResponse {
	return todoResponse{
		ID:           item.ID.String(),
		Description:  item.Description,
		Status:       item.Status.Display(),
		CreationTime: item.CreatedAt,
		DueTime:      item.DueAt,
		DoneTime:     item.DoneAt,
	}
}
