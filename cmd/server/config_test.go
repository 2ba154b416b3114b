package main

import (
	"context"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aehsummit/site/pkg/logger"
	"github.com/aehsummit/site/pkg/mailer"
	"github.com/aehsummit/site/pkg/mailer/resend"
)

func TestConfig_Defaults(t *testing.T) {
	var cfg Config
	require.NoError(t, env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}))

	assert.Equal(t, ":3001", cfg.Addr())
	assert.Equal(t, "resend", cfg.MailProvider)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"your-email@example.com"}, cfg.Contact.Recipients)
	assert.Equal(t, "onboarding@resend.dev", cfg.Resend.SenderEmail)
	assert.Equal(t, "Africa-Europe Health R&D Summit", cfg.Resend.SenderName)
	assert.Equal(t, "production", cfg.Sentry.Environment)
}

func TestConfig_FromEnvironment(t *testing.T) {
	var cfg Config
	require.NoError(t, env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{
		"PORT":               "8080",
		"CONTACT_EMAIL":      "a@summit.example,b@summit.example",
		"MAIL_PROVIDER":      "postmark",
		"CORS_ALLOW_ORIGINS": "https://summit.example",
	}}))

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, []string{"a@summit.example", "b@summit.example"}, cfg.Contact.Recipients)
	assert.Equal(t, "postmark", cfg.MailProvider)
	assert.Equal(t, []string{"https://summit.example"}, cfg.AllowOrigins)
}

func TestConfig_Provider(t *testing.T) {
	assert.Equal(t, "resend", Config{MailProvider: " Resend "}.Provider())
	assert.Equal(t, "ses", Config{MailProvider: "SES"}.Provider())
	assert.Equal(t, "", Config{}.Provider())
}

func TestNewSender(t *testing.T) {
	log := logger.NewNope()

	t.Run("log provider is always ready", func(t *testing.T) {
		s, check, err := newSender(context.Background(), Config{MailProvider: "log"}, log)
		require.NoError(t, err)
		assert.IsType(t, &mailer.LogSender{}, s)
		assert.NoError(t, check(context.Background()))
	})

	t.Run("resend without key is not ready", func(t *testing.T) {
		s, check, err := newSender(context.Background(), Config{MailProvider: " Resend "}, log)
		require.NoError(t, err)
		assert.NotNil(t, s)
		assert.ErrorIs(t, check(context.Background()), resend.ErrMissingAPIKey)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, _, err := newSender(context.Background(), Config{MailProvider: "pigeon"}, log)
		assert.ErrorIs(t, err, errUnknownProvider)
	})
}
