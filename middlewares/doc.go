// Package middlewares provides the request middleware the site installs on
// every route.
//
//   - RequestID: reuses an incoming X-Request-ID or generates a UUID, stores
//     it in the request context and echoes it in the response.
//   - Recover: turns a panic into a *PanicError for the app ErrorHandler.
//   - CORS: answers preflight requests and sets Access-Control-* headers.
//   - RequestLogger: one structured log line per request.
//   - Metrics: Prometheus request counters by route pattern.
//
// Order matters. The site uses:
//
//	site.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.RequestLogger(),
//	    middlewares.Metrics(httpMetrics),
//	    middlewares.Recover(),
//	    middlewares.CORS(middlewares.WithAllowOrigins(origins...)),
//	)
//
// Recover sits inside RequestLogger and Metrics so a panic is still logged
// and counted as a 500.
package middlewares
