package middlewares

import (
	"log/slog"
	"time"

	"github.com/aehsummit/site/internal"
	"github.com/aehsummit/site/pkg/logger"
)

// RequestLogger logs one line per request with method, path, status and
// duration. Server errors are logged at ERROR, client errors at WARN.
// The error itself is still returned for the ErrorHandler.
func RequestLogger() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			status := c.ResponseWriter().Status()
			if he := internal.AsHTTPError(err); he != nil && !c.Written() {
				status = he.Code
			} else if err != nil && !c.Written() {
				status = 500
			}

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				attrs = append(attrs, logger.Error(err))
			}

			switch {
			case status >= 500:
				c.LogError("request", attrs...)
			case status >= 400:
				c.LogWarn("request", attrs...)
			default:
				c.LogInfo("request", attrs...)
			}
			return err
		}
	}
}
