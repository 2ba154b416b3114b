// Package sendgrid delivers mail through the SendGrid v3 API.
package sendgrid

import (
	"context"
	"fmt"
	netmail "net/mail"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/aehsummit/site/pkg/mailer"
)

// messageIDHeader carries SendGrid's id for an accepted message.
const messageIDHeader = "X-Message-Id"

// Client is the subset of the SendGrid client the sender needs.
type Client interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// Sender implements mailer.Sender using SendGrid.
type Sender struct {
	client Client
	config Config
}

var _ mailer.Sender = (*Sender)(nil)

// New creates a SendGrid sender.
func New(cfg Config) *Sender {
	return NewWithClient(sendgrid.NewSendClient(cfg.APIKey), cfg)
}

// NewWithClient creates a sender over an existing client.
func NewWithClient(client Client, cfg Config) *Sender {
	return &Sender{client: client, config: cfg}
}

// Send implements mailer.Sender. SendGrid answers 202 with the message id in
// the X-Message-Id header; any status of 400 or above is a failure.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	msg, err := s.build(email)
	if err != nil {
		return "", err
	}

	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("sendgrid: send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}

	for k, v := range resp.Headers {
		if len(v) > 0 && strings.EqualFold(k, messageIDHeader) {
			return v[0], nil
		}
	}
	return "", nil
}

func (s *Sender) build(email *mailer.Email) (*mail.SGMailV3, error) {
	from := mail.NewEmail(s.config.SenderName, s.config.SenderEmail)
	if email.From != "" {
		addr, err := netmail.ParseAddress(email.From)
		if err != nil {
			return nil, fmt.Errorf("sendgrid: invalid from address: %w", err)
		}
		from = mail.NewEmail(addr.Name, addr.Address)
	}

	p := mail.NewPersonalization()
	p.AddTos(addresses(email.To)...)
	if len(email.CC) > 0 {
		p.AddCCs(addresses(email.CC)...)
	}
	if len(email.BCC) > 0 {
		p.AddBCCs(addresses(email.BCC)...)
	}

	msg := mail.NewV3Mail()
	msg.SetFrom(from)
	msg.Subject = email.Subject
	msg.AddPersonalizations(p)
	if email.ReplyTo != "" {
		msg.SetReplyTo(mail.NewEmail("", email.ReplyTo))
	}
	// SendGrid requires text/plain to precede text/html.
	if email.Text != "" {
		msg.AddContent(mail.NewContent("text/plain", email.Text))
	}
	msg.AddContent(mail.NewContent("text/html", email.HTML))
	for k, v := range email.Headers {
		msg.SetHeader(k, v)
	}
	if names := email.Tags.Names(); len(names) > 0 {
		msg.AddCategories(names...)
	}
	return msg, nil
}

func addresses(list []string) []*mail.Email {
	out := make([]*mail.Email, 0, len(list))
	for _, a := range list {
		if addr, err := netmail.ParseAddress(a); err == nil {
			out = append(out, mail.NewEmail(addr.Name, addr.Address))
			continue
		}
		out = append(out, mail.NewEmail("", a))
	}
	return out
}
