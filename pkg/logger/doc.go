// Package logger builds the structured loggers used across the site.
//
// Loggers are plain *slog.Logger values. Two additions sit on top of the
// standard library:
//
//   - context extractors, which copy request-scoped values (the request id)
//     into every record written with a *Context logging method;
//   - optional Sentry fan-out, so delivery failures of the contact relay show
//     up as Sentry issues in production.
//
// # Basic Usage
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "contact notification sent", slog.String("id", id))
//
// # Sentry
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//	}, middlewares.RequestIDExtractor())
//
// With an empty DSN the logger silently falls back to stdout only, so the same
// wiring works in development. Register [SentryFlush] as a shutdown hook to
// drain buffered events before the process exits.
package logger
