package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	site "github.com/aehsummit/site"
	"github.com/aehsummit/site/pkg/contact"
)

// Public error messages. Causes are logged, never returned to the client.
const (
	MsgDeliveryFailed = "Failed to send email"
	MsgInternal       = "Internal server error"
)

// Notifier relays a submission and returns the provider message id.
// *contact.Relay implements it.
type Notifier interface {
	Notify(ctx context.Context, s contact.Submission) (string, error)
}

// ContactResponse is the success body of POST /api/contact.
type ContactResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// ContactHandler serves the contact form endpoint.
type ContactHandler struct {
	notifier Notifier
}

func NewContactHandler(n Notifier) *ContactHandler {
	return &ContactHandler{notifier: n}
}

// Routes implements site.Handler.
func (h *ContactHandler) Routes(r site.Router) {
	r.POST("/api/contact", h.submit)
}

// submit blocks on the provider call; there are no retries.
func (h *ContactHandler) submit(c site.Context) error {
	// An empty body decodes as an empty submission and fails validation.
	var s contact.Submission
	if err := c.BindJSON(&s); err != nil && !errors.Is(err, io.EOF) {
		return site.ErrInternal(MsgInternal, site.WithError(err))
	}

	id, err := h.notifier.Notify(c.Context(), s)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, ContactResponse{Success: true, ID: id})
	case contact.IsValidationError(err):
		return site.ErrBadRequest(contact.ValidationMessage, site.WithError(err))
	case errors.Is(err, contact.ErrDelivery):
		return site.ErrInternal(MsgDeliveryFailed, site.WithError(err))
	default:
		return site.ErrInternal(MsgInternal, site.WithError(err))
	}
}
