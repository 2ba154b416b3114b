package internal

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submission struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func newTestRequestContext(method, body string) (*requestContext, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, "/api/contact?src=hero", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return newContext(rec, req, slog.New(slog.DiscardHandler)), rec
}

func TestContext_BindJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes body and ignores unknown fields", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestRequestContext(http.MethodPost, `{"name":"Jane","message":"Hi","extra":1}`)
		var s submission
		require.NoError(t, c.BindJSON(&s))
		assert.Equal(t, submission{Name: "Jane", Message: "Hi"}, s)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestRequestContext(http.MethodPost, `{"name":`)
		var s submission
		err := c.BindJSON(&s)
		require.ErrorIs(t, err, ErrInvalidJSON)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestRequestContext(http.MethodPost, "")
		var s submission
		require.ErrorIs(t, c.BindJSON(&s), ErrInvalidJSON)
	})

	t.Run("body over the limit", func(t *testing.T) {
		t.Parallel()

		big := `{"name":"` + strings.Repeat("a", MaxJSONBodyBytes) + `"}`
		c, _ := newTestRequestContext(http.MethodPost, big)
		var s submission
		require.ErrorIs(t, c.BindJSON(&s), ErrBodyTooLarge)
	})
}

func TestContext_Responses(t *testing.T) {
	t.Parallel()

	t.Run("JSON", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestRequestContext(http.MethodGet, "")
		require.NoError(t, c.JSON(http.StatusOK, map[string]any{"success": true, "id": "abc"}))
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"success":true,"id":"abc"}`, rec.Body.String())
		assert.True(t, c.Written())
	})

	t.Run("Render", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestRequestContext(http.MethodGet, "")
		page := ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<h1>Summit</h1>")
			return err
		})
		require.NoError(t, c.Render(http.StatusOK, page))
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "<h1>Summit</h1>", rec.Body.String())
	})

	t.Run("NoContent", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestRequestContext(http.MethodOptions, "")
		require.NoError(t, c.NoContent(http.StatusNoContent))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, http.StatusNoContent, c.ResponseWriter().Status())
	})

	t.Run("Error does not write", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestRequestContext(http.MethodGet, "")
		err := c.Error(http.StatusBadRequest, "All fields are required")
		assert.Equal(t, http.StatusBadRequest, err.Code)
		assert.False(t, c.Written())
	})
}

func TestContext_Accessors(t *testing.T) {
	t.Parallel()

	c, rec := newTestRequestContext(http.MethodPost, "")
	assert.Equal(t, "hero", c.Query("src"))
	assert.Equal(t, "application/json", c.Header("Content-Type"))

	c.SetHeader("X-Request-ID", "r1")
	assert.Equal(t, "r1", rec.Header().Get("X-Request-ID"))

	type key struct{}
	assert.Nil(t, c.Get(key{}))
	c.Set(key{}, 7)
	assert.Equal(t, 7, c.Get(key{}))
	assert.Equal(t, 7, c.Value(key{}))
	assert.Equal(t, 7, c.Request().Context().Value(key{}))
}

func TestContext_LogHelpersUseRequestContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := newContext(rec, req, slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	c.LogDebug("d")
	c.LogInfo("i")
	c.LogWarn("w")
	c.LogError("e")

	out := buf.String()
	for _, lvl := range []string{"DEBUG", "INFO", "WARN", "ERROR"} {
		assert.Contains(t, out, "level="+lvl)
	}
}
