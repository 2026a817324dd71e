// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string

	// Template and JobID are attached to the provider message as tags.
	Template string
	JobID    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueWeeklyDigest queues the weekly spending digest. A digest already
	// queued for the same account and ISO week returns domainerror.ErrEmailAlreadyQueued.
	QueueWeeklyDigest(ctx context.Context, input QueueWeeklyDigestInput) error
}

// QueueWeeklyDigestInput represents the figures rendered into the weekly digest.
type QueueWeeklyDigestInput struct {
	AccountID      uuid.UUID
	Week           time.Time // any instant inside the digest's ISO week
	Email          string
	Name           string
	NeedsTotal     string
	WantsTotal     string
	TotalSpending  string
	Remaining      string
	SavingsAmount  string
	RewardPoints   int64
	Recommendation string
	CoachNote      string
}
