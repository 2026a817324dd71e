package adapter

import (
	"context"
	"time"

	"github.com/financial-coach/backend/internal/domain/entity"
)

// EmailQueueRepository stores coaching emails until the worker delivers them.
type EmailQueueRepository interface {
	// Create queues a job. A job whose idempotency key is already queued
	// returns domainerror.ErrEmailAlreadyQueued.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs returns pending jobs due at now, oldest schedule first.
	GetPendingJobs(ctx context.Context, now time.Time, limit int) ([]*entity.EmailJob, error)

	Update(ctx context.Context, job *entity.EmailJob) error

	// FindByIdempotencyKey returns domainerror.ErrEmailJobNotFound when nothing was queued under key.
	FindByIdempotencyKey(ctx context.Context, key string) (*entity.EmailJob, error)

	// PruneSent deletes sent jobs processed before the cutoff.
	PruneSent(ctx context.Context, before time.Time) (int64, error)
}
