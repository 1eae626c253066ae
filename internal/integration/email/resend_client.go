// Package email provides email queue processing and delivery via Resend.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// ResendClient delivers email through the Resend API.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient builds a sender for the given API key and from address.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send delivers one email, classifying provider rejections as permanent
// or transient so the worker knows whether to retry.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	resp, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	})
	if err != nil {
		code := domainerror.ErrCodeTransientEmailFailure
		msg := "transient email failure"
		if isPermanentError(err) {
			code = domainerror.ErrCodePermanentEmailFailure
			msg = "permanent email failure"
		}
		return nil, domainerror.NewEmailError(code, msg, err)
	}

	return &adapter.SendEmailResult{ProviderID: resp.Id}, nil
}

// isPermanentError reports whether the error should not be retried.
// Auth and validation rejections are permanent; rate limits and server
// errors are worth retrying.
func isPermanentError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, pattern := range []string{
		"401", "403", "422",
		"unauthorized", "forbidden",
		"validation", "invalid", "bad request",
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// MockEmailSender records sends in memory for tests.
type MockEmailSender struct {
	SentEmails  []adapter.SendEmailInput
	ShouldFail  bool
	FailError   error
	IsPermanent bool
}

// NewMockEmailSender creates an empty mock sender.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{SentEmails: make([]adapter.SendEmailInput, 0)}
}

// Send records the input, or fails if configured to.
func (m *MockEmailSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if m.ShouldFail {
		code := domainerror.ErrCodeTransientEmailFailure
		msg := "mock transient failure"
		if m.IsPermanent {
			code = domainerror.ErrCodePermanentEmailFailure
			msg = "mock permanent failure"
		}
		return nil, domainerror.NewEmailError(code, msg, m.FailError)
	}

	m.SentEmails = append(m.SentEmails, input)
	return &adapter.SendEmailResult{ProviderID: fmt.Sprintf("mock-%d", len(m.SentEmails))}, nil
}

// SetFailure makes subsequent sends fail with the given error.
func (m *MockEmailSender) SetFailure(err error, permanent bool) {
	m.ShouldFail = true
	m.FailError = err
	m.IsPermanent = permanent
}

// Reset clears recorded sends and failure configuration.
func (m *MockEmailSender) Reset() {
	m.SentEmails = m.SentEmails[:0]
	m.ShouldFail = false
	m.FailError = nil
	m.IsPermanent = false
}

var (
	_ adapter.EmailSender = (*ResendClient)(nil)
	_ adapter.EmailSender = (*MockEmailSender)(nil)
)
