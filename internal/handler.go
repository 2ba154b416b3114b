package internal

// Handler declares routes on a router.
//
//	type ContactHandler struct{ relay *contact.Relay }
//
//	func (h *ContactHandler) Routes(r site.Router) {
//	    r.POST("/api/contact", h.submit)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands it to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler turns a handler error into a response.
type ErrorHandler func(Context, error) error
