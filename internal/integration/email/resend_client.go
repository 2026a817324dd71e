// Package email queues, renders and delivers coaching emails.
package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/financial-coach/backend/internal/application/adapter"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

var (
	temporaryMarkers = []string{"429", "rate limit", "too many requests", "timeout", "500", "502", "503", "504"}
	permanentMarkers = []string{"400", "401", "403", "404", "422", "unauthorized", "forbidden", "validation", "invalid", "bad request"}
)

// ResendClient delivers emails through the Resend API.
type ResendClient struct {
	client *resend.Client
	from   string
}

// NewResendClient creates a client sending as "fromName <fromEmail>".
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client: resend.NewClient(apiKey),
		from:   fmt.Sprintf("%s <%s>", fromName, fromEmail),
	}
}

// Send delivers one email. The template and job id travel as Resend tags so
// deliveries can be traced back to the queue row.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	resp, err := c.client.Emails.SendWithContext(ctx, c.request(input))
	if err != nil {
		code := classifySendError(err)
		message := "temporary email failure"
		if code == domainerror.ErrCodePermanentEmailFailure {
			message = "permanent email failure"
		}
		return nil, domainerror.NewEmailError(code, message, err)
	}

	return &adapter.SendEmailResult{ResendID: resp.Id}, nil
}

func (c *ResendClient) request(input adapter.SendEmailInput) *resend.SendEmailRequest {
	req := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}
	if input.Template != "" {
		req.Tags = append(req.Tags, resend.Tag{Name: "template", Value: input.Template})
	}
	if input.JobID != "" {
		req.Tags = append(req.Tags, resend.Tag{Name: "job_id", Value: input.JobID})
	}
	return req
}

// classifySendError decides whether the worker should retry a failed send.
// Rate limits and server errors are retried; rejected requests are not.
// Anything unrecognised is treated as temporary.
func classifySendError(err error) domainerror.EmailErrorCode {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domainerror.ErrCodeTemporaryEmailFailure
	}

	msg := strings.ToLower(err.Error())
	if containsAny(msg, temporaryMarkers) {
		return domainerror.ErrCodeTemporaryEmailFailure
	}
	if containsAny(msg, permanentMarkers) {
		return domainerror.ErrCodePermanentEmailFailure
	}
	return domainerror.ErrCodeTemporaryEmailFailure
}

func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

var _ adapter.EmailSender = (*ResendClient)(nil)
