// Package mailer renders notification emails from markdown templates and
// hands them to a delivery provider.
//
// The package keeps three concerns apart:
//
//   - [Sender]: the provider capability, "send(message) -> id | error".
//     Adapters live in sub-packages (resend, postmark, sendgrid, ses);
//     [LogSender] is a development stand-in that only logs.
//   - [Renderer]: markdown templates with YAML frontmatter, rendered to an HTML
//     fragment with goldmark, sanitized, and wrapped in an html/template layout.
//   - [Mailer]: resolves the subject, renders, and sends.
//
// # Templates
//
// A template is a markdown file with optional frontmatter:
//
//	---
//	Subject: "New Contact: {{.Name}} from {{.Organization}}"
//	---
//
//	{{bold "Name:"}} {{escape .Name}}
//
//	{{escape .Message}}
//
//	{{button "Reply by email" (mailto .Email)}}
//
// Untrusted values must go through the escape func. In the HTML variant it
// backslash-escapes markdown punctuation so user input renders as literal
// text; in the plain-text variant it is the identity. The mailto func builds
// a percent-encoded mailto: URL.
//
// Formatting goes through bold, link and button rather than literal markdown.
// In the HTML variant they emit **text**, [label](url) and the button syntax;
// in the plain-text variant they emit the bare label, "label <url>" and
// "label: url", so the text part carries no markup.
//
// The frontmatter Subject is itself a text/template executed with the same data.
// Line breaks in subjects are folded into spaces.
//
// # Layouts
//
// Layouts are html/template files receiving:
//
//	.Content   the rendered, sanitized HTML fragment (template.HTML)
//	.Metadata  the template frontmatter
//	.Data      the data passed to Render
//
// Values from .Data are escaped by html/template as usual.
//
// # Errors
//
//   - ErrNoRecipient, ErrNoSubject, ErrNoContent: invalid message
//   - ErrTemplateNotFound, ErrLayoutNotFound, ErrRenderFailed, ErrInvalidFrontmatter: rendering
//   - ErrSendFailed: the provider rejected or failed the send (joined with the provider error)
package mailer
