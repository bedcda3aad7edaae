// Command sweeper runs a single past-due sweep and exits. It is intended
// to be invoked by an external cron job as an alternative to the in-process
// reconciler (disable the reconciler in config when using it).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	todorepo "github.com/heartmarshall/todo-backend/internal/adapter/postgres/todo"
	"github.com/heartmarshall/todo-backend/internal/app"
	"github.com/heartmarshall/todo-backend/internal/config"
	todosvc "github.com/heartmarshall/todo-backend/internal/service/todo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := todosvc.NewService(logger, todorepo.New(pool), cfg.Pagination)

	count, err := svc.SweepPastDue(ctx)
	if err != nil {
		logger.Error("past due sweep failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("past due sweep completed", slog.Int64("count", count))
}
