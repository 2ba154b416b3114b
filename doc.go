// Package site is the web layer of the Africa-Europe Health R&D Summit
// site: a single landing page and the contact form endpoint that relays
// submissions to the organisers by email.
//
// The package is a thin facade over chi. Create an application with
// [New], configure it with options and call Run:
//
//	app := site.New(
//	    site.WithCustomLogger(log),
//	    site.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    site.WithErrorHandler(handlers.ErrorHandler),
//	    site.WithHandlers(
//	        handlers.NewPage(),
//	        handlers.NewContact(relay),
//	    ),
//	)
//
//	if err := app.Run(":3001", site.ShutdownHook(logger.SentryFlush())); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes and return
// errors instead of writing error responses themselves:
//
//	func (h *Contact) Routes(r site.Router) {
//	    r.POST("/api/contact", h.submit)
//	}
//
//	func (h *Contact) submit(c site.Context) error {
//	    var s contact.Submission
//	    if err := c.BindJSON(&s); err != nil {
//	        return err
//	    }
//	    ...
//	}
//
// # Errors
//
// Every error returned from a handler or middleware reaches the single
// [ErrorHandler]. Return an [HTTPError] (see [ErrBadRequest] and
// [ErrInternal]) to control the status and the public message; the
// wrapped cause is only logged.
//
// # Middleware
//
// Global middleware is installed with [WithMiddleware]; route middleware is
// passed to Router methods. The first middleware listed runs first. Values
// stored with Context.Set are visible to every later middleware and the
// handler.
//
// # Health checks
//
// [WithHealthChecks] mounts /health/live and /health/ready. Readiness runs
// its checks in parallel.
package site
