package ses

import "errors"

var ErrMissingSender = errors.New("ses: SES_FROM_EMAIL is not set")

// Config holds SES sender identity. Region and credentials fall back to the
// standard AWS chain (AWS_REGION, AWS_ACCESS_KEY_ID, profiles, roles) when
// left empty.
type Config struct {
	Region           string `env:"SES_REGION"`
	AccessKey        string `env:"SES_ACCESS_KEY_ID"`
	SecretKey        string `env:"SES_SECRET_ACCESS_KEY"`
	SenderEmail      string `env:"SES_FROM_EMAIL"`
	SenderName       string `env:"SES_FROM_NAME" envDefault:"Africa-Europe Health R&D Summit"`
	ConfigurationSet string `env:"SES_CONFIGURATION_SET"`
}

func (c Config) Validate() error {
	if c.SenderEmail == "" {
		return ErrMissingSender
	}
	return nil
}
