package todo

import (
	"context"
	"fmt"
	"log/slog"
)

// SweepPastDue transitions every NOT_DONE item whose deadline has elapsed to
// PAST_DUE in one atomic bulk write, and returns the number of items moved.
// This is the only writer of the NOT_DONE to PAST_DUE transition; no read
// path performs it implicitly, so an item's visible status may lag real time
// by up to one reconciler interval.
func (s *Service) SweepPastDue(ctx context.Context) (int64, error) {
	cutoff := s.now().UTC()

	count, err := s.todos.MarkPastDueBulk(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("mark past due bulk: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "past due sweep completed",
			slog.Int64("count", count),
			slog.Time("cutoff", cutoff),
		)
	} else {
		s.log.DebugContext(ctx, "past due sweep found no eligible items",
			slog.Time("cutoff", cutoff),
		)
	}

	return count, nil
}
