package mailer

import (
	"context"
	"errors"
)

// Mailer renders templates and hands the result to a Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a Mailer.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{sender: sender, renderer: renderer, config: cfg}
}

// SendParams describes a templated email.
type SendParams struct {
	To       []string
	Template string // template file name, e.g. "contact.md"
	Data     any

	Subject string // overrides the template subject
	Layout  string // overrides Config.DefaultLayout
	From    string // overrides the provider's sender identity
	ReplyTo string
	CC      []string
	BCC     []string
	Tags    Tags
}

// Send renders params.Template and sends it, returning the provider message id.
// Subject resolution: params.Subject, then template frontmatter, then
// Config.FallbackSubject. Render failures wrap ErrRenderFailed; provider
// failures wrap ErrSendFailed.
func (m *Mailer) Send(ctx context.Context, params SendParams) (string, error) {
	if len(params.To) == 0 {
		return "", ErrNoRecipient
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	result, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return "", errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		subject = result.Subject
	}
	if subject == "" {
		subject = m.config.FallbackSubject
	}

	return m.SendRaw(ctx, &Email{
		To:      params.To,
		Subject: FoldLines(subject),
		HTML:    result.HTML,
		Text:    result.Text,
		From:    params.From,
		ReplyTo: params.ReplyTo,
		CC:      params.CC,
		BCC:     params.BCC,
		Tags:    params.Tags,
	})
}

// SendRaw validates and sends a prepared email.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) (string, error) {
	if err := email.Validate(); err != nil {
		return "", err
	}

	id, err := m.sender.Send(ctx, email)
	if err != nil {
		return "", errors.Join(ErrSendFailed, err)
	}
	return id, nil
}
