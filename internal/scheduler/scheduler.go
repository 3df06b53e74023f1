// Package scheduler runs housekeeping tasks on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Task is one unit of periodic work. It returns how many items it touched.
type Task interface {
	Name() string
	Run(ctx context.Context) (int, error)
}

// TaskFunc adapts a function to Task.
type TaskFunc struct {
	Label string
	Fn    func(ctx context.Context) (int, error)
}

func (f TaskFunc) Name() string { return f.Label }

func (f TaskFunc) Run(ctx context.Context) (int, error) { return f.Fn(ctx) }

type Scheduler struct {
	task     Task
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewScheduler(task Task, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		task:     task,
		interval: interval,
		timeout:  interval,
		logger:   logger.With("task", task.Name()),
	}
}

// Start blocks until ctx is cancelled. The first run happens after one
// interval has elapsed.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	n, err := s.task.Run(runCtx)
	if err != nil {
		s.logger.Error("task failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Debug("task completed", "affected", n, "duration", time.Since(start))
	}
}
