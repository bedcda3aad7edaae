package reconciler

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/todo-backend/internal/config"
)

// sweeper defines the minimal service interface the reconciler drives.
type sweeper interface {
	SweepPastDue(ctx context.Context) (int64, error)
}

// Reconciler periodically transitions overdue items to PAST_DUE. It runs
// the sweep from a single goroutine, so two sweeps never overlap: if a
// sweep outlasts the interval, the ticker simply drops the missed ticks.
type Reconciler struct {
	svc sweeper
	cfg config.ReconcilerConfig
	log *slog.Logger
}

// New creates a Reconciler. The settings are passed explicitly so tests can
// run independent reconcilers with different intervals and flags.
func New(svc sweeper, cfg config.ReconcilerConfig, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		svc: svc,
		cfg: cfg,
		log: logger.With("component", "reconciler"),
	}
}

// Run executes the sweep on every tick until ctx is cancelled. A failing
// tick is logged and never stops the loop; the next tick proceeds on
// schedule. Run blocks, so callers start it in its own goroutine.
func (r *Reconciler) Run(ctx context.Context) {
	r.log.Info("reconciler started",
		slog.Bool("enabled", r.cfg.Enabled),
		slog.Duration("interval", r.cfg.Interval),
	)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info("reconciler stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

// tick runs one sweep. The enabled flag is checked here rather than in Run,
// so a disabled reconciler keeps ticking and skipping silently.
func (r *Reconciler) tick(ctx context.Context) {
	if !r.cfg.Enabled {
		return
	}

	// A sweep that has started runs to completion even if the loop's
	// context is cancelled mid-flight; the bulk update is atomic and
	// should not be torn down by shutdown.
	sweepCtx := context.WithoutCancel(ctx)

	if _, err := r.svc.SweepPastDue(sweepCtx); err != nil {
		r.log.Error("past due sweep failed", slog.String("error", err.Error()))
	}
}
