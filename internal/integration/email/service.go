// Package email provides email sending functionality.
package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

// WeeklyDigestSubject is the subject line of the weekly digest.
const WeeklyDigestSubject = "Your weekly spending digest - AI Financial Coach"

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueWeeklyDigest queues the weekly spending digest.
func (s *Service) QueueWeeklyDigest(ctx context.Context, input adapter.QueueWeeklyDigestInput) error {
	templateData := map[string]interface{}{
		"name":           input.Name,
		"needs_total":    input.NeedsTotal,
		"wants_total":    input.WantsTotal,
		"total_spending": input.TotalSpending,
		"remaining":      input.Remaining,
		"savings_amount": input.SavingsAmount,
		"reward_points":  input.RewardPoints,
		"recommendation": input.Recommendation,
		"coach_note":     input.CoachNote,
		"dashboard_url":  s.appBaseURL,
	}

	week := input.Week
	if week.IsZero() {
		week = time.Now()
	}

	var key string
	if input.AccountID != uuid.Nil {
		key = entity.WeeklyDigestKey(input.AccountID, week)
		existing, err := s.queue.FindByIdempotencyKey(ctx, key)
		switch {
		case err == nil:
			slog.Info("Weekly digest already queued", "job_id", existing.ID, "key", key, "status", existing.Status)
			return domainerror.ErrEmailAlreadyQueued
		case !errors.Is(err, domainerror.ErrEmailJobNotFound):
			return domainerror.NewEmailError(
				domainerror.ErrCodeEmailQueueFailed,
				"failed to check for a queued weekly digest",
				err,
			)
		}
	}

	job := entity.NewEmailJob(
		entity.TemplateWeeklyDigest,
		input.Email,
		input.Name,
		WeeklyDigestSubject,
		templateData,
	)
	job.IdempotencyKey = key
	if input.AccountID != uuid.Nil {
		accountID := input.AccountID
		job.AccountID = &accountID
	}

	if err := s.queue.Create(ctx, job); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyQueued) {
			return err
		}
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue weekly digest email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
