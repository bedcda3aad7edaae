package rest

import "net/http"

// NewRouter registers all REST routes on a fresh ServeMux.
func NewRouter(todos *TodoHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/todos", todos.Create)
	mux.HandleFunc("GET /v1/todos", todos.List)
	mux.HandleFunc("GET /v1/todos/{id}", todos.Get)
	mux.HandleFunc("PATCH /v1/todos/{id}/description", todos.UpdateDescription)
	mux.HandleFunc("PATCH /v1/todos/{id}/done", todos.MarkDone)
	mux.HandleFunc("PATCH /v1/todos/{id}/not-done", todos.MarkNotDone)

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)

	return mux
}
