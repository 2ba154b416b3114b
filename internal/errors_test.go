package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aehsummit/site/internal"
)

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct HTTPError", func(t *testing.T) {
		t.Parallel()
		err := internal.ErrBadRequest("All fields are required")
		he := internal.AsHTTPError(err)
		require.NotNil(t, he)
		require.Equal(t, http.StatusBadRequest, he.StatusCode())
	})

	t.Run("wrapped HTTPError", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", internal.ErrInternal("Failed to send email")))
		he := internal.AsHTTPError(err)
		require.NotNil(t, he)
		require.Equal(t, "Failed to send email", he.Message)
	})

	t.Run("unrelated error", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, internal.AsHTTPError(errors.New("boom")))
		require.Nil(t, internal.AsHTTPError(nil))
	})
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	cause := errors.New("resend: 422 invalid from")
	err := internal.ErrInternal("Failed to send email",
		internal.WithError(cause),
		internal.WithRequestID("req-1"),
	)

	require.Equal(t, "Failed to send email", err.Error())
	require.ErrorIs(t, err, cause)
	require.Equal(t, "req-1", err.RequestID)
	require.Equal(t, "Internal Server Error", err.StatusText())

	for code, fn := range map[int]func(string, ...internal.HTTPErrorOption) *internal.HTTPError{
		http.StatusNotFound:              internal.ErrNotFound,
		http.StatusMethodNotAllowed:      internal.ErrMethodNotAllowed,
		http.StatusRequestEntityTooLarge: internal.ErrRequestTooLarge,
	} {
		require.Equal(t, code, fn("x").Code)
	}
}
