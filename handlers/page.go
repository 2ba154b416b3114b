package handlers

import (
	"net/http"

	site "github.com/aehsummit/site"
	"github.com/aehsummit/site/web"
)

// PageHandler serves the landing page that hosts the contact form.
type PageHandler struct {
	data web.PageData
}

func NewPageHandler(data web.PageData) *PageHandler {
	return &PageHandler{data: data}
}

func (h *PageHandler) Routes(r site.Router) {
	r.GET("/", h.index)
}

func (h *PageHandler) index(c site.Context) error {
	return c.Render(http.StatusOK, web.Index(h.data))
}
