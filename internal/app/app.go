package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	todorepo "github.com/heartmarshall/todo-backend/internal/adapter/postgres/todo"
	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/internal/reconciler"
	todosvc "github.com/heartmarshall/todo-backend/internal/service/todo"
	"github.com/heartmarshall/todo-backend/internal/transport/middleware"
	"github.com/heartmarshall/todo-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the service and reconciler, and serves HTTP until
// ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	todoRepo := todorepo.New(pool)
	todoService := todosvc.NewService(logger, todoRepo, cfg.Pagination)

	// The reconciler gets its own context so an in-flight HTTP shutdown
	// does not race with a running sweep.
	recCtx, recCancel := context.WithCancel(context.Background())
	defer recCancel()
	go reconciler.New(todoService, cfg.Reconciler, logger).Run(recCtx)

	mux := rest.NewRouter(
		rest.NewTodoHandler(todoService, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	recCancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
