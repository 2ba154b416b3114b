package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/aehsummit/site/pkg/sanitizer"
)

// RendererConfig configures a Renderer.
type RendererConfig struct {
	TemplateDir string // default "."
	LayoutDir   string // default "layouts"

	// HardWraps renders single newlines inside a paragraph as <br>.
	HardWraps bool
	// Sanitize passes the rendered fragment through sanitizer.SanitizeHTML
	// before it is placed into the layout.
	Sanitize bool
}

// Renderer turns markdown templates into HTML emails.
// Parsed templates and layouts are cached; the renderer is safe for concurrent use.
type Renderer struct {
	fs      fs.FS
	md      goldmark.Markdown
	cfg     RendererConfig
	mu      sync.RWMutex
	tmpls   map[string]*cachedTemplate
	layouts map[string]*template.Template
}

type cachedTemplate struct {
	meta    map[string]any
	subject string
	html    *texttemplate.Template
	text    *texttemplate.Template
}

// RenderResult is the output of Renderer.Render.
type RenderResult struct {
	Metadata map[string]any
	Subject  string // executed frontmatter Subject, empty when the template has none
	HTML     string
	Text     string
}

// NewRenderer creates a renderer with the default config.
func NewRenderer(fsys fs.FS) *Renderer {
	return NewRendererWithConfig(fsys, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with a custom config.
func NewRendererWithConfig(fsys fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}

	var htmlOpts []renderer.Option
	if cfg.HardWraps {
		htmlOpts = append(htmlOpts, html.WithHardWraps())
	}

	return &Renderer{
		fs:  fsys,
		cfg: cfg,
		md: goldmark.New(
			goldmark.WithExtensions(NewButtonExtension()),
			goldmark.WithRendererOptions(htmlOpts...),
		),
		tmpls:   make(map[string]*cachedTemplate),
		layouts: make(map[string]*template.Template),
	}
}

// Render executes a template with data, converts it to HTML and wraps it in
// the named layout. The plain-text alternative is the same template executed
// without markdown escaping.
func (r *Renderer) Render(layout, name string, data any) (*RenderResult, error) {
	t, err := r.template(name)
	if err != nil {
		return nil, err
	}

	var md bytes.Buffer
	if err := t.html.Execute(&md, data); err != nil {
		return nil, fmt.Errorf("%w: execute %s: %v", ErrRenderFailed, name, err)
	}
	var text bytes.Buffer
	if err := t.text.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("%w: execute %s: %v", ErrRenderFailed, name, err)
	}

	var fragment bytes.Buffer
	if err := r.md.Convert(md.Bytes(), &fragment); err != nil {
		return nil, fmt.Errorf("%w: convert markdown: %v", ErrRenderFailed, err)
	}
	content := fragment.String()
	if r.cfg.Sanitize {
		content = sanitizer.SanitizeHTML(content)
	}

	subject, err := executeSubject(t.subject, data)
	if err != nil {
		return nil, fmt.Errorf("%w: subject of %s: %v", ErrRenderFailed, name, err)
	}

	lt, err := r.layout(layout)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	err = lt.Execute(&out, map[string]any{
		"Content":  template.HTML(content),
		"Metadata": t.meta,
		"Subject":  subject,
		"Data":     data,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: execute layout %s: %v", ErrRenderFailed, layout, err)
	}

	return &RenderResult{
		Metadata: t.meta,
		Subject:  subject,
		HTML:     out.String(),
		Text:     text.String(),
	}, nil
}

func (r *Renderer) template(name string) (*cachedTemplate, error) {
	r.mu.RLock()
	t, ok := r.tmpls[name]
	r.mu.RUnlock()
	if ok {
		return t, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tmpls[name]; ok {
		return t, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.cfg.TemplateDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}
	parsed, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	htmlTmpl, err := texttemplate.New(name).Funcs(htmlFuncs()).Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRenderFailed, name, err)
	}
	textTmpl, err := texttemplate.New(name).Funcs(textFuncs()).Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRenderFailed, name, err)
	}

	subject, _ := parsed.Subject()
	t = &cachedTemplate{meta: parsed.Metadata, subject: subject, html: htmlTmpl, text: textTmpl}
	r.tmpls[name] = t
	return t, nil
}

func (r *Renderer) layout(name string) (*template.Template, error) {
	r.mu.RLock()
	lt, ok := r.layouts[name]
	r.mu.RUnlock()
	if ok {
		return lt, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if lt, ok := r.layouts[name]; ok {
		return lt, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.cfg.LayoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}
	lt, err = template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parse layout %s: %v", ErrRenderFailed, name, err)
	}
	r.layouts[name] = lt
	return lt, nil
}

// executeSubject runs a subject line as a text/template and folds line breaks.
func executeSubject(subject string, data any) (string, error) {
	if subject == "" {
		return "", nil
	}
	t, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return FoldLines(buf.String()), nil
}
