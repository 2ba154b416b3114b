// Package postmark delivers mail through the Postmark transactional API.
package postmark

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrz1836/postmark"

	"github.com/aehsummit/site/pkg/mailer"
)

// Client is the subset of the Postmark client the sender needs.
type Client interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// Sender implements mailer.Sender using Postmark.
type Sender struct {
	client Client
	config Config
}

var _ mailer.Sender = (*Sender)(nil)

// New creates a Postmark sender.
func New(cfg Config) *Sender {
	return NewWithClient(postmark.NewClient(cfg.ServerToken, cfg.AccountToken), cfg)
}

// NewWithClient creates a sender over an existing client.
func NewWithClient(client Client, cfg Config) *Sender {
	return &Sender{client: client, config: cfg}
}

// Send implements mailer.Sender. The returned id is Postmark's MessageID.
// A response with a non-zero ErrorCode is a failure even without a transport error.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	msg := postmark.Email{
		From:          from,
		To:            strings.Join(email.To, ","),
		Cc:            strings.Join(email.CC, ","),
		Bcc:           strings.Join(email.BCC, ","),
		Subject:       email.Subject,
		HTMLBody:      email.HTML,
		TextBody:      email.Text,
		ReplyTo:       email.ReplyTo,
		MessageStream: s.config.MessageStream,
	}
	if names := email.Tags.Names(); len(names) > 0 {
		// Postmark carries a single tag; the rest go into metadata.
		msg.Tag = names[0]
		msg.Metadata = make(map[string]string, len(names))
		for _, n := range names {
			msg.Metadata[n] = mailer.TagValue(email.Tags[n])
		}
	}
	for k, v := range email.Headers {
		msg.Headers = append(msg.Headers, postmark.Header{Name: k, Value: v})
	}

	resp, err := s.client.SendEmail(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("postmark: send email: %w", err)
	}
	if resp.ErrorCode > 0 {
		return "", fmt.Errorf("postmark: error %d: %s", resp.ErrorCode, resp.Message)
	}
	return resp.MessageID, nil
}
