package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/aehsummit/site/pkg/contact"
	"github.com/aehsummit/site/pkg/health"
	"github.com/aehsummit/site/pkg/logger"
	"github.com/aehsummit/site/pkg/mailer"
	"github.com/aehsummit/site/pkg/mailer/postmark"
	"github.com/aehsummit/site/pkg/mailer/resend"
	"github.com/aehsummit/site/pkg/mailer/sendgrid"
	"github.com/aehsummit/site/pkg/mailer/ses"
)

var errUnknownProvider = errors.New("unknown MAIL_PROVIDER")

// Config is the full server configuration, read from the environment and
// an optional .env file.
type Config struct {
	Port            int           `env:"PORT" envDefault:"3001"`
	MailProvider    string        `env:"MAIL_PROVIDER" envDefault:"resend"`
	AllowOrigins    []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	Contact  contact.Config
	Mailer   mailer.Config
	Resend   resend.Config
	Postmark postmark.Config
	SendGrid sendgrid.Config
	SES      ses.Config
	Sentry   logger.SentryConfig
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Provider is MAIL_PROVIDER lowercased and trimmed.
func (c Config) Provider() string {
	return strings.ToLower(strings.TrimSpace(c.MailProvider))
}

// newSender builds the configured provider adapter and a readiness check
// reporting whether its configuration is usable.
func newSender(ctx context.Context, cfg Config, log *slog.Logger) (mailer.Sender, health.CheckFunc, error) {
	switch cfg.Provider() {
	case "resend":
		return resend.New(cfg.Resend), health.Static(cfg.Resend.Validate), nil
	case "postmark":
		return postmark.New(cfg.Postmark), health.Static(cfg.Postmark.Validate), nil
	case "sendgrid":
		return sendgrid.New(cfg.SendGrid), health.Static(cfg.SendGrid.Validate), nil
	case "ses":
		s, err := ses.New(ctx, cfg.SES)
		if err != nil {
			return nil, nil, fmt.Errorf("ses: %w", err)
		}
		return s, health.Static(cfg.SES.Validate), nil
	case "log":
		return mailer.NewLogSender(log), health.Static(func() error { return nil }), nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", errUnknownProvider, cfg.MailProvider)
	}
}
