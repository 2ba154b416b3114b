package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	site "github.com/aehsummit/site"
	"github.com/aehsummit/site/middlewares"
	"github.com/aehsummit/site/pkg/contact"
	"github.com/aehsummit/site/pkg/logger"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler writes {"error": message} for any handler or middleware error.
// An *site.HTTPError keeps its status and message; anything else, panics
// included, becomes 500 "Internal server error".
func ErrorHandler(c site.Context, err error) error {
	code, msg, cause := http.StatusInternalServerError, MsgInternal, err
	if he := site.AsHTTPError(err); he != nil {
		code, msg = he.Code, he.Message
		if he.Err != nil {
			cause = he.Err
		}
	}

	attrs := []any{
		slog.Int("status", code),
		slog.String("path", c.Request().URL.Path),
		logger.Error(cause),
	}
	if id := middlewares.GetRequestID(c); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}

	var ve *contact.ValidationError
	switch {
	case errors.As(err, &ve):
		c.LogWarn("invalid contact submission", append(attrs, slog.String("detail", ve.Detail()))...)
	case middlewares.IsPanicError(err):
		c.LogError("panic in handler", attrs...)
	case code >= http.StatusInternalServerError:
		c.LogError("request failed", attrs...)
	default:
		c.LogWarn("request rejected", attrs...)
	}

	return c.JSON(code, ErrorResponse{Error: msg})
}

// NotFound answers unknown routes with a JSON 404.
func NotFound(c site.Context) error {
	return site.ErrNotFound("Not found")
}

// MethodNotAllowed answers known routes called with the wrong method.
func MethodNotAllowed(c site.Context) error {
	return site.ErrMethodNotAllowed("Method not allowed")
}
