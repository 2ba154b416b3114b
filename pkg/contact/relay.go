package contact

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aehsummit/site/pkg/logger"
	"github.com/aehsummit/site/pkg/mailer"
	"github.com/aehsummit/site/pkg/metrics"
)

// Config is the relay configuration.
type Config struct {
	Recipients []string `env:"CONTACT_EMAIL" envSeparator:"," envDefault:"your-email@example.com"`
	Template   string   `env:"CONTACT_TEMPLATE" envDefault:"contact.md"`
	Layout     string   `env:"CONTACT_LAYOUT" envDefault:"notification.html"`
}

// Relay turns submissions into notification emails.
type Relay struct {
	mailer   *mailer.Mailer
	cfg      Config
	metrics  *metrics.ContactMetrics
	provider string
	logger   *slog.Logger
}

type RelayOption func(*Relay)

// WithMetrics records submission outcomes and provider latency.
func WithMetrics(m *metrics.ContactMetrics) RelayOption {
	return func(r *Relay) {
		r.metrics = m
	}
}

// WithProvider names the email provider in metrics and logs.
func WithProvider(name string) RelayOption {
	return func(r *Relay) {
		if name != "" {
			r.provider = name
		}
	}
}

func WithLogger(l *slog.Logger) RelayOption {
	return func(r *Relay) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRelay creates a Relay. Empty Template and Layout fall back to the
// embedded contact.md and notification.html.
func NewRelay(m *mailer.Mailer, cfg Config, opts ...RelayOption) *Relay {
	if cfg.Template == "" {
		cfg.Template = "contact.md"
	}
	if cfg.Layout == "" {
		cfg.Layout = "notification.html"
	}
	r := &Relay{
		mailer:   m,
		cfg:      cfg,
		provider: "unknown",
		logger:   logger.NewNope(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Notify validates s and emails it to the configured recipients with the
// submitter as Reply-To. It returns the provider message id.
//
// Errors: *ValidationError when a field is empty (nothing is sent),
// ErrDelivery joined with the cause when the provider call fails, and
// anything else as is.
func (r *Relay) Notify(ctx context.Context, s Submission) (string, error) {
	if err := Validate(s); err != nil {
		r.metrics.ObserveSubmission(metrics.OutcomeInvalid)
		return "", err
	}

	start := time.Now()
	id, err := r.mailer.Send(ctx, mailer.SendParams{
		To:       r.cfg.Recipients,
		Template: r.cfg.Template,
		Layout:   r.cfg.Layout,
		Data:     s,
		ReplyTo:  strings.TrimSpace(s.Email),
		Tags:     mailer.Tags{"category": "contact"},
	})
	elapsed := time.Since(start).Seconds()

	switch {
	case errors.Is(err, mailer.ErrSendFailed):
		r.metrics.ObserveDelivery(r.provider, false, elapsed)
		r.metrics.ObserveSubmission(metrics.OutcomeFailed)
		r.logger.ErrorContext(ctx, "contact notification not delivered",
			slog.String("provider", r.provider),
			logger.Error(err),
		)
		return "", errors.Join(ErrDelivery, err)
	case err != nil:
		r.metrics.ObserveSubmission(metrics.OutcomeInternal)
		return "", err
	}

	r.metrics.ObserveDelivery(r.provider, true, elapsed)
	r.metrics.ObserveSubmission(metrics.OutcomeSent)
	r.logger.InfoContext(ctx, "contact notification sent",
		slog.String("provider", r.provider),
		slog.String("message_id", id),
	)
	return id, nil
}
