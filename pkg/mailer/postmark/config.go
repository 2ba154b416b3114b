package postmark

import "errors"

var (
	ErrMissingServerToken = errors.New("postmark: POSTMARK_SERVER_TOKEN is not set")
	ErrMissingSender      = errors.New("postmark: POSTMARK_FROM_EMAIL is not set")
)

// Config holds Postmark provider configuration.
type Config struct {
	ServerToken   string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken  string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail   string `env:"POSTMARK_FROM_EMAIL"`
	SenderName    string `env:"POSTMARK_FROM_NAME" envDefault:"Africa-Europe Health R&D Summit"`
	MessageStream string `env:"POSTMARK_MESSAGE_STREAM" envDefault:"outbound"`
}

// Validate reports whether the sender can authenticate and has a sender
// signature. The account token is optional; only server-level calls are made.
func (c Config) Validate() error {
	if c.ServerToken == "" {
		return ErrMissingServerToken
	}
	if c.SenderEmail == "" {
		return ErrMissingSender
	}
	return nil
}
