package kanban

import (
	"context"
	"fmt"
	"time"

	"github.com/conductor-hq/conductor/ent/task"
)

// SweepTimeouts fails every in_progress task whose deadline has passed.
// Scheduled on the shared cron runner; safe to run concurrently across
// pods because failTask transitions are conditional.
func (e *Engine) SweepTimeouts(ctx context.Context) {
	now := time.Now().UTC()

	overdue, err := e.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusInProgress),
			task.TimeoutMsNotNil(),
			task.StartedAtNotNil(),
		).
		All(ctx)
	if err != nil {
		e.logger.Error("Timeout sweep query failed", "error", err)
		return
	}

	expired := 0
	for _, t := range overdue {
		deadline := t.StartedAt.Add(time.Duration(*t.TimeoutMs) * time.Millisecond)
		if deadline.After(now) {
			continue
		}
		errMsg := fmt.Sprintf("Timed out after %dms", *t.TimeoutMs)
		if _, err := e.failTask(ctx, t, errMsg, "task:timeout_retry", "task:timeout_dead_letter"); err != nil {
			e.logger.Error("Failed to time out task", "task_id", t.ID, "error", err)
			continue
		}
		expired++
	}
	if expired > 0 {
		e.logger.Info("Timeout sweep expired tasks", "count", expired)
	}
}
