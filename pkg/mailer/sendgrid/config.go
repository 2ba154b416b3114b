package sendgrid

import "errors"

var (
	ErrMissingAPIKey = errors.New("sendgrid: SENDGRID_API_KEY is not set")
	ErrMissingSender = errors.New("sendgrid: SENDGRID_FROM_EMAIL is not set")
)

// Config holds SendGrid provider configuration.
type Config struct {
	APIKey      string `env:"SENDGRID_API_KEY"`
	SenderEmail string `env:"SENDGRID_FROM_EMAIL"`
	SenderName  string `env:"SENDGRID_FROM_NAME" envDefault:"Africa-Europe Health R&D Summit"`
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.SenderEmail == "" {
		return ErrMissingSender
	}
	return nil
}
