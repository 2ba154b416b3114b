package contact

import (
	"embed"
	"io/fs"

	"github.com/aehsummit/site/pkg/mailer"
)

//go:embed templates
var embedded embed.FS

// Templates holds contact.md and layouts/notification.html.
var Templates fs.FS = mustSub(embedded, "templates")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// NewRenderer returns a renderer over the embedded templates with hard
// line breaks and sanitising enabled.
func NewRenderer() *mailer.Renderer {
	return mailer.NewRendererWithConfig(Templates, mailer.RendererConfig{
		HardWraps: true,
		Sanitize:  true,
	})
}
