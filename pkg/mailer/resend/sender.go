// Package resend delivers mail through the Resend API.
package resend

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/aehsummit/site/pkg/mailer"
)

// EmailsAPI is the subset of the Resend client the sender needs.
type EmailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	emails EmailsAPI
	config Config
}

var _ mailer.Sender = (*Sender)(nil)

// New creates a Resend sender.
func New(cfg Config) *Sender {
	return NewWithClient(resend.NewClient(cfg.APIKey).Emails, cfg)
}

// NewWithClient creates a sender over an existing emails API client.
func NewWithClient(emails EmailsAPI, cfg Config) *Sender {
	return &Sender{emails: emails, config: cfg}
}

// Send implements mailer.Sender. The returned id is Resend's email id.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: email.Headers,
	}
	for _, name := range email.Tags.Names() {
		req.Tags = append(req.Tags, resend.Tag{Name: name, Value: mailer.TagValue(email.Tags[name])})
	}

	resp, err := s.emails.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("resend: send email: %w", err)
	}
	if resp == nil || resp.Id == "" {
		return "", fmt.Errorf("resend: empty response")
	}
	return resp.Id, nil
}
