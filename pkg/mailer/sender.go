package mailer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Sender is the delivery capability a provider implements.
// Send delivers a prepared email and returns the provider-assigned message id.
// Any non-nil error means the message was not accepted for delivery.
type Sender interface {
	Send(ctx context.Context, email *Email) (string, error)
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) (string, error)

func (f SenderFunc) Send(ctx context.Context, email *Email) (string, error) {
	return f(ctx, email)
}

// LogSender logs emails instead of delivering them.
// Used when MAIL_PROVIDER=log, typically on a developer machine.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a LogSender. A nil logger uses slog.Default().
func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger}
}

// Send logs the message envelope and returns a locally generated id.
func (s *LogSender) Send(ctx context.Context, email *Email) (string, error) {
	id := "log-" + uuid.NewString()
	s.logger.InfoContext(ctx, "email not delivered: log sender",
		slog.String("id", id),
		slog.Any("to", email.To),
		slog.String("reply_to", email.ReplyTo),
		slog.String("subject", email.Subject),
		slog.Int("html_bytes", len(email.HTML)),
	)
	return id, nil
}
