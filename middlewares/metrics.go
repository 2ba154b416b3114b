package middlewares

import (
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aehsummit/site/internal"
	"github.com/aehsummit/site/pkg/metrics"
)

// Metrics records request count and latency by chi route pattern, so
// unmatched paths collapse into a single "unmatched" series.
func Metrics(m *metrics.HTTPMetrics) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			code := c.ResponseWriter().Status()
			if !c.Written() && err != nil {
				code = 500
				if he := internal.AsHTTPError(err); he != nil {
					code = he.Code
				}
			}

			route := "unmatched"
			if rctx := chi.RouteContext(c.Request().Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			m.ObserveRequest(c.Request().Method, route, strconv.Itoa(code), time.Since(start).Seconds())
			return err
		}
	}
}
