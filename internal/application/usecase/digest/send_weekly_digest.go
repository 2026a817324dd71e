// Package digest contains the weekly spending digest use case.
package digest

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/application/usecase/analysis"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
	"github.com/financial-coach/backend/internal/domain/valueobject"
)

// SendWeeklyDigestInput represents the input for the weekly digest.
type SendWeeklyDigestInput struct {
	Now time.Time
}

// SendWeeklyDigestOutput represents the output of the weekly digest.
type SendWeeklyDigestOutput struct {
	Recipient     string
	AlreadyQueued bool // this week's digest was queued by an earlier run
}

// SendWeeklyDigestUseCase runs the analysis and queues the digest email.
type SendWeeklyDigestUseCase struct {
	getAnalysis      *analysis.GetAnalysisUseCase
	emailService     adapter.EmailService
	defaultRecipient string
}

// NewSendWeeklyDigestUseCase creates a new SendWeeklyDigestUseCase instance.
// defaultRecipient is used when the account has no email.
func NewSendWeeklyDigestUseCase(
	getAnalysis *analysis.GetAnalysisUseCase,
	emailService adapter.EmailService,
	defaultRecipient string,
) *SendWeeklyDigestUseCase {
	return &SendWeeklyDigestUseCase{
		getAnalysis:      getAnalysis,
		emailService:     emailService,
		defaultRecipient: strings.TrimSpace(defaultRecipient),
	}
}

// Execute queues the digest for the active account.
func (uc *SendWeeklyDigestUseCase) Execute(ctx context.Context, input SendWeeklyDigestInput) (*SendWeeklyDigestOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	result, err := uc.getAnalysis.Execute(ctx, analysis.GetAnalysisInput{
		Window: valueobject.AllTime(),
		Now:    now,
	})
	if err != nil {
		return nil, err
	}

	recipient := strings.TrimSpace(result.Account.Email)
	if recipient == "" {
		recipient = uc.defaultRecipient
	}
	if recipient == "" {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeNoDigestRecipient,
			"no recipient configured for the weekly digest",
			domainerror.ErrNoDigestRecipient,
		)
	}

	snapshot := result.Snapshot
	err = uc.emailService.QueueWeeklyDigest(ctx, adapter.QueueWeeklyDigestInput{
		AccountID:      result.Account.ID,
		Week:           now,
		Email:          recipient,
		Name:           result.Account.Nickname,
		NeedsTotal:     snapshot.Needs.StringFixed(2),
		WantsTotal:     snapshot.Wants.StringFixed(2),
		TotalSpending:  snapshot.Total.StringFixed(2),
		Remaining:      snapshot.Remaining.StringFixed(2),
		SavingsAmount:  snapshot.SavingsAmount.StringFixed(2),
		RewardPoints:   snapshot.Rewards.TotalPoints,
		Recommendation: snapshot.Recommendation,
		CoachNote:      result.CoachNote,
	})
	if errors.Is(err, domainerror.ErrEmailAlreadyQueued) {
		return &SendWeeklyDigestOutput{Recipient: recipient, AlreadyQueued: true}, nil
	}
	if err != nil {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue weekly digest",
			err,
		)
	}

	slog.Info("Weekly digest queued", "account_id", result.Account.ID, "recipient", recipient)

	return &SendWeeklyDigestOutput{Recipient: recipient}, nil
}
