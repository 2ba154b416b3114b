package postmark_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mrz1836/postmark"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aehsummit/site/pkg/mailer"
	pmsender "github.com/aehsummit/site/pkg/mailer/postmark"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(postmark.EmailResponse), args.Error(1)
}

var cfg = pmsender.Config{
	ServerToken:   "server",
	SenderEmail:   "summit@example.org",
	SenderName:    "Summit",
	MessageStream: "outbound",
}

func testEmail() *mailer.Email {
	return &mailer.Email{
		To:      []string{"a@example.com", "b@example.com"},
		ReplyTo: "jane@acme.org",
		Subject: "New Contact: Jane Doe from Acme Health",
		HTML:    "<p>x</p>",
		Text:    "x",
		Tags:    mailer.Tags{"source": "contact-form"},
	}
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	client := &mockClient{}
	client.On("SendEmail", mock.Anything, mock.MatchedBy(func(e postmark.Email) bool {
		return e.From == "Summit <summit@example.org>" &&
			e.To == "a@example.com,b@example.com" &&
			e.ReplyTo == "jane@acme.org" &&
			e.Tag == "source" &&
			e.Metadata["source"] == "contact-form" &&
			e.MessageStream == "outbound"
	})).Return(postmark.EmailResponse{MessageID: "pm-1"}, nil)

	id, err := pmsender.NewWithClient(client, cfg).Send(context.Background(), testEmail())
	require.NoError(t, err)
	require.Equal(t, "pm-1", id)
	client.AssertExpectations(t)
}

func TestSender_Send_Errors(t *testing.T) {
	t.Parallel()

	t.Run("api error code", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{}
		client.On("SendEmail", mock.Anything, mock.Anything).
			Return(postmark.EmailResponse{ErrorCode: 406, Message: "Inactive recipient"}, nil)

		_, err := pmsender.NewWithClient(client, cfg).Send(context.Background(), testEmail())
		require.ErrorContains(t, err, "406")
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()

		netErr := errors.New("connection reset")
		client := &mockClient{}
		client.On("SendEmail", mock.Anything, mock.Anything).Return(postmark.EmailResponse{}, netErr)

		_, err := pmsender.NewWithClient(client, cfg).Send(context.Background(), testEmail())
		require.ErrorIs(t, err, netErr)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, cfg.Validate())
	require.ErrorIs(t, pmsender.Config{SenderEmail: "x"}.Validate(), pmsender.ErrMissingServerToken)
	require.ErrorIs(t, pmsender.Config{ServerToken: "x"}.Validate(), pmsender.ErrMissingSender)
}
