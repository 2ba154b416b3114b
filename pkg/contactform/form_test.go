package contactform_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aehsummit/site/pkg/contact"
	"github.com/aehsummit/site/pkg/contactform"
)

func janeDoe() contact.Submission {
	return contact.Submission{
		Name:         "Jane Doe",
		Organization: "WHO",
		Title:        "Director",
		Email:        "jane@who.int",
		Message:      "Hello\nWorld",
	}
}

type recorder struct {
	mu     sync.Mutex
	states []contactform.State
}

func (r *recorder) record(s contactform.State) {
	r.mu.Lock()
	r.states = append(r.states, s)
	r.mu.Unlock()
}

func (r *recorder) all() []contactform.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]contactform.State(nil), r.states...)
}

func jsonServer(t *testing.T, status int, body string, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", contactform.StateIdle.String())
	assert.Equal(t, "submitting", contactform.StateSubmitting.String())
	assert.Equal(t, "success", contactform.StateSuccess.String())
	assert.Equal(t, "error", contactform.StateError.String())
	assert.Equal(t, "unknown", contactform.State(42).String())
}

func TestForm_OpenClose(t *testing.T) {
	t.Parallel()

	f := contactform.New("http://unused")
	assert.False(t, f.IsOpen())
	f.Open()
	f.Open()
	assert.True(t, f.IsOpen())
	f.Close()
	f.Close()
	assert.False(t, f.IsOpen())
	assert.Equal(t, contactform.StateIdle, f.State())
}

func TestForm_Submit_Success(t *testing.T) {
	t.Parallel()

	var got contact.Submission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"success":true,"id":"re_123"}`))
	}))
	t.Cleanup(srv.Close)

	rec := &recorder{}
	f := contactform.New(srv.URL,
		contactform.WithHTTPClient(srv.Client()),
		contactform.WithResetDelay(20*time.Millisecond),
		contactform.WithOnChange(rec.record),
	)
	f.Open()

	require.NoError(t, f.Submit(context.Background(), janeDoe()))
	assert.Equal(t, janeDoe(), got)
	assert.Equal(t, contactform.StateSuccess, f.State())
	assert.Equal(t, "re_123", f.LastID())
	assert.Equal(t, contact.Submission{}, f.Fields())
	assert.True(t, f.IsOpen())

	require.Eventually(t, func() bool {
		return f.State() == contactform.StateIdle && !f.IsOpen()
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []contactform.State{
		contactform.StateSubmitting,
		contactform.StateSuccess,
		contactform.StateIdle,
	}, rec.all())
}

func TestForm_Submit_ValidationSkipsNetwork(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := jsonServer(t, http.StatusOK, `{"success":true,"id":"x"}`, &calls)

	f := contactform.New(srv.URL, contactform.WithHTTPClient(srv.Client()))
	fields := janeDoe()
	fields.Email = "  "

	err := f.Submit(context.Background(), fields)
	require.Error(t, err)
	assert.True(t, contact.IsValidationError(err))
	assert.EqualValues(t, 0, calls.Load())
	assert.Equal(t, contactform.StateIdle, f.State())
	assert.Equal(t, fields, f.Fields())
}

func TestForm_Submit_ServerErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"validation rejected by server", http.StatusBadRequest, `{"error":"All fields are required"}`},
		{"delivery failure", http.StatusInternalServerError, `{"error":"Failed to send email"}`},
		{"internal error", http.StatusInternalServerError, `{"error":"Internal server error"}`},
		{"success without confirmation", http.StatusOK, `{"success":false}`},
		{"garbage body", http.StatusOK, `<html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			srv := jsonServer(t, tt.status, tt.body, &calls)
			f := contactform.New(srv.URL, contactform.WithHTTPClient(srv.Client()))

			err := f.Submit(context.Background(), janeDoe())
			require.ErrorIs(t, err, contactform.ErrSubmitFailed)
			assert.EqualValues(t, 1, calls.Load())
			assert.Equal(t, contactform.StateError, f.State())
			assert.Equal(t, janeDoe(), f.Fields())
			assert.Empty(t, f.LastID())
		})
	}
}

func TestForm_Submit_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	f := contactform.New(url)
	err := f.Submit(context.Background(), janeDoe())
	require.ErrorIs(t, err, contactform.ErrSubmitFailed)
	assert.Equal(t, contactform.StateError, f.State())
}

func TestForm_Submit_RetryAfterError(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool
	fail.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Failed to send email"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"id":"second"}`))
	}))
	t.Cleanup(srv.Close)

	f := contactform.New(srv.URL, contactform.WithHTTPClient(srv.Client()))
	require.Error(t, f.Submit(context.Background(), janeDoe()))

	fail.Store(false)
	require.NoError(t, f.Submit(context.Background(), f.Fields()))
	assert.Equal(t, "second", f.LastID())
}

func TestForm_Submit_SingleInFlight(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	entered := make(chan struct{}, 1)
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		entered <- struct{}{}
		<-release
		_, _ = w.Write([]byte(`{"success":true,"id":"only"}`))
	}))
	t.Cleanup(srv.Close)

	f := contactform.New(srv.URL, contactform.WithHTTPClient(srv.Client()))

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background(), janeDoe()) }()
	<-entered

	assert.Equal(t, contactform.StateSubmitting, f.State())
	err := f.Submit(context.Background(), janeDoe())
	assert.True(t, errors.Is(err, contactform.ErrSubmitInProgress))

	f.Close()
	close(release)
	require.NoError(t, <-done)
	assert.EqualValues(t, 1, calls.Load())
	assert.Equal(t, "only", f.LastID())
}

func TestForm_Submit_NewSubmissionCancelsPendingReset(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := jsonServer(t, http.StatusOK, `{"success":true,"id":"x"}`, &calls)
	f := contactform.New(srv.URL,
		contactform.WithHTTPClient(srv.Client()),
		contactform.WithResetDelay(50*time.Millisecond),
	)

	f.Open()
	require.NoError(t, f.Submit(context.Background(), janeDoe()))
	require.NoError(t, f.Submit(context.Background(), janeDoe()))

	require.Eventually(t, func() bool {
		return f.State() == contactform.StateIdle
	}, time.Second, 5*time.Millisecond)
	assert.EqualValues(t, 2, calls.Load())
}
