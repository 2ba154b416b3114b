// Command server serves the summit landing page and relays contact form
// submissions by email.
package main

import (
	"context"
	"os"

	site "github.com/aehsummit/site"
	"github.com/aehsummit/site/handlers"
	"github.com/aehsummit/site/middlewares"
	"github.com/aehsummit/site/pkg/config"
	"github.com/aehsummit/site/pkg/contact"
	"github.com/aehsummit/site/pkg/logger"
	"github.com/aehsummit/site/pkg/mailer"
	"github.com/aehsummit/site/pkg/metrics"
	"github.com/aehsummit/site/web"
)

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := logger.NewWithSentry(cfg.Sentry, middlewares.RequestIDExtractor()).With("app", "summit-site")

	sender, mailCheck, err := newSender(context.Background(), cfg, log)
	if err != nil {
		log.Error("mail provider setup failed", logger.Error(err))
		os.Exit(1)
	}
	if err := mailCheck(context.Background()); err != nil {
		log.Warn("mail provider is not fully configured", "provider", cfg.Provider(), logger.Error(err))
	}

	reg := metrics.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(reg)
	contactMetrics := metrics.NewContactMetrics(reg)

	m := mailer.New(sender, contact.NewRenderer(), cfg.Mailer)
	relay := contact.NewRelay(m, cfg.Contact,
		contact.WithMetrics(contactMetrics),
		contact.WithProvider(cfg.Provider()),
		contact.WithLogger(log),
	)

	app := site.New(
		site.WithCustomLogger(log),
		site.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger(),
			middlewares.Metrics(httpMetrics),
			middlewares.Recover(),
			middlewares.CORS(middlewares.WithAllowOrigins(cfg.AllowOrigins...)),
		),
		site.WithErrorHandler(handlers.ErrorHandler),
		site.WithNotFoundHandler(handlers.NotFound),
		site.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		site.WithHealthChecks(site.WithReadinessCheck("mail", mailCheck)),
		site.WithStaticFiles("/static/", web.FS, web.StaticDir),
		site.WithMount("/metrics", metrics.Handler(reg)),
		site.WithHandlers(
			handlers.NewPageHandler(web.DefaultPageData()),
			handlers.NewContactHandler(relay),
		),
	)

	if err := app.Run(cfg.Addr(),
		site.ShutdownTimeout(cfg.ShutdownTimeout),
		site.ShutdownHook(logger.SentryFlush()),
	); err != nil {
		log.Error("server error", logger.Error(err))
		os.Exit(1)
	}
}
