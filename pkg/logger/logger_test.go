package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func requestIDFrom(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return slog.String("request_id", v), true
	}
	return slog.Attr{}, false
}

func TestNewWithWriter_AddsExtractedAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo, requestIDFrom, nil)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	log.InfoContext(ctx, "contact notification sent", slog.String("id", "msg-1"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, "msg-1", rec["id"])
}

func TestNewWithWriter_SkipsMissingValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo, requestIDFrom)
	log.InfoContext(context.Background(), "no request")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.NotContains(t, rec, "request_id")
}

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelWarn)
	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestDecorator_WithAttrsKeepsExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo, requestIDFrom).With("component", "contact")

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-2")
	log.InfoContext(ctx, "hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "contact", rec["component"])
	assert.Equal(t, "req-2", rec["request_id"])
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestMultiHandler_DeliversToAllDestinations(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	ha := slog.NewJSONHandler(&a, nil)
	hb := slog.NewJSONHandler(&b, nil)
	broken := failingHandler{Handler: slog.NewJSONHandler(&bytes.Buffer{}, nil)}

	log := slog.New(newMultiHandler(ha, broken, hb))
	log.Info("fan out")

	assert.Contains(t, a.String(), "fan out")
	assert.Contains(t, b.String(), "fan out")
}

func TestNewWithSentry_NoDSNFallsBackToStdout(t *testing.T) {
	t.Parallel()

	log := NewWithSentry(SentryConfig{})
	require.NotNil(t, log)
	_, isDecorator := log.Handler().(*LogHandlerDecorator)
	assert.True(t, isDecorator)
}

func TestErrorAttr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.String("error", "boom"), Error(errors.New("boom")))
	assert.Equal(t, slog.Attr{}, Error(nil))
}

func TestSentryFlush_WithoutInit(t *testing.T) {
	t.Parallel()

	require.NoError(t, SentryFlush()(context.Background()))
}
