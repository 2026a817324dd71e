package email

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/financial-coach/backend/internal/application/adapter"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

// MockEmailSender records emails instead of delivering them. It stands in for
// Resend when no API key is configured and in tests.
type MockEmailSender struct {
	mu          sync.Mutex
	SentEmails  []adapter.SendEmailInput
	ShouldFail  bool
	FailError   error
	IsPermanent bool
}

// NewMockEmailSender creates a new mock email sender.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

// Send records input, or fails as configured by SetFailure.
func (m *MockEmailSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ShouldFail {
		code := domainerror.ErrCodeTemporaryEmailFailure
		if m.IsPermanent {
			code = domainerror.ErrCodePermanentEmailFailure
		}
		return nil, domainerror.NewEmailError(code, "mock delivery failure", m.FailError)
	}

	m.SentEmails = append(m.SentEmails, input)
	slog.Info("Email recorded without delivery",
		"to", input.To,
		"subject", input.Subject,
		"template", input.Template,
	)

	return &adapter.SendEmailResult{ResendID: fmt.Sprintf("mock-%d", len(m.SentEmails))}, nil
}

// SetFailure makes every following Send fail with err.
func (m *MockEmailSender) SetFailure(err error, permanent bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ShouldFail = true
	m.FailError = err
	m.IsPermanent = permanent
}

// Reset forgets recorded emails and any configured failure.
func (m *MockEmailSender) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentEmails = nil
	m.ShouldFail = false
	m.FailError = nil
	m.IsPermanent = false
}

var _ adapter.EmailSender = (*MockEmailSender)(nil)
