package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/aehsummit/site/internal"
	"github.com/aehsummit/site/middlewares"
	"github.com/aehsummit/site/pkg/metrics"
)

func TestMetrics_RecordsRoutePattern(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.NewHTTPMetrics(reg)

	app := internal.New(
		internal.WithMiddleware(middlewares.Metrics(m)),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.POST("/api/contact", func(c internal.Context) error {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "All fields are required"})
			})
		})),
	)

	for range 2 {
		app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/contact", nil))
	}
	app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "summit_http_requests_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range metric.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			counts[labels["route"]+" "+labels["code"]] += metric.GetCounter().GetValue()
		}
	}
	require.Equal(t, 2.0, counts["/api/contact 400"])
	require.Equal(t, 1.0, counts["unmatched 404"])
	count, err := testutil.GatherAndCount(reg, "summit_http_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()

	handler := middlewares.Metrics(nil)(okHandler)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, handler(newTestContext(httptest.NewRecorder(), req)))
}
