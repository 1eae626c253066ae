package adapter

import "context"

// SendEmailInput is a fully rendered email ready for the provider.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult is the provider's acknowledgement.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender delivers a single email through the outbound provider.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
