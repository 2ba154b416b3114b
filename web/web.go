// Package web embeds the landing page template and its static assets.
package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"

	site "github.com/aehsummit/site"
)

//go:embed templates static
var FS embed.FS

// StaticDir is the directory inside FS served under /static/.
const StaticDir = "static"

var pages = template.Must(template.ParseFS(FS, "templates/*.html"))

// PageData is the data the landing page renders.
type PageData struct {
	Title           string
	Tagline         string
	Dates           string
	Venue           string
	ContactEndpoint string
}

// DefaultPageData returns the summit's landing page content.
func DefaultPageData() PageData {
	return PageData{
		Title:           "Africa-Europe Health R&D Summit",
		Tagline:         "Partnerships for research, innovation and equitable access to health technologies.",
		Dates:           "2026",
		Venue:           "Brussels",
		ContactEndpoint: "/api/contact",
	}
}

// Index renders the landing page. The page is rendered into a buffer first
// so a template error never leaves a half-written response.
func Index(data PageData) site.Component {
	return site.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := pages.ExecuteTemplate(&buf, "index.html", data); err != nil {
			return err
		}
		_, err := buf.WriteTo(w)
		return err
	})
}
