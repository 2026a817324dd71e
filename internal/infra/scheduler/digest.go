// Package scheduler runs periodic background jobs.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/application/usecase/digest"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

// DigestSender queues one weekly digest.
type DigestSender interface {
	Execute(ctx context.Context, input digest.SendWeeklyDigestInput) (*digest.SendWeeklyDigestOutput, error)
}

// DigestScheduler queues the weekly digest on a fixed interval and prunes old sent emails.
type DigestScheduler struct {
	sender    DigestSender
	queue     adapter.EmailQueueRepository
	interval  time.Duration
	retention time.Duration
	now       func() time.Time
}

// NewDigestScheduler creates a new digest scheduler. queue may be nil to skip pruning.
func NewDigestScheduler(sender DigestSender, queue adapter.EmailQueueRepository, interval, retention time.Duration) *DigestScheduler {
	if interval <= 0 {
		interval = 168 * time.Hour
	}
	return &DigestScheduler{
		sender:    sender,
		queue:     queue,
		interval:  interval,
		retention: retention,
		now:       time.Now,
	}
}

// Start runs the scheduler loop. It blocks until the context is cancelled.
func (s *DigestScheduler) Start(ctx context.Context) {
	slog.Info("Digest scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Digest scheduler shutting down")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce queues a digest and prunes the queue. Failures are logged.
func (s *DigestScheduler) RunOnce(ctx context.Context) {
	now := s.now()
	output, err := s.sender.Execute(ctx, digest.SendWeeklyDigestInput{Now: now})
	switch {
	case err == nil && output.AlreadyQueued:
		slog.Info("Weekly digest already queued this week", "recipient", output.Recipient)
	case err == nil:
		slog.Info("Weekly digest queued", "recipient", output.Recipient)
	case errors.Is(err, domainerror.ErrNoAccount), errors.Is(err, domainerror.ErrNoDigestRecipient):
		slog.Info("Weekly digest skipped", "reason", err.Error())
	default:
		slog.Error("Failed to queue weekly digest", "error", err)
	}

	if s.queue == nil || s.retention <= 0 {
		return
	}
	deleted, err := s.queue.PruneSent(ctx, now.Add(-s.retention))
	if err != nil {
		slog.Error("Failed to prune sent emails", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("Pruned sent emails", "count", deleted, "retention", s.retention)
	}
}
