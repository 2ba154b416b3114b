package mailer

import (
	"net/url"
	"strings"
	texttemplate "text/template"
)

// EscapeMarkdown makes s safe to interpolate into a markdown template.
// Every ASCII punctuation character is backslash-escaped so it renders
// literally, and leading indentation is dropped from each line so user text
// cannot open a code block. Line breaks are kept.
func EscapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var b strings.Builder
	b.Grow(len(s) + len(s)/8)
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, r := range strings.TrimLeft(line, " \t") {
			if r < 0x80 && isASCIIPunct(byte(r)) {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isASCIIPunct(c byte) bool {
	return (c >= '!' && c <= '/') || (c >= ':' && c <= '@') ||
		(c >= '[' && c <= '`') || (c >= '{' && c <= '~')
}

// MailtoURL builds a mailto: URL with the address percent-encoded.
func MailtoURL(addr string) string {
	return "mailto:" + url.PathEscape(strings.TrimSpace(addr))
}

// FoldLines replaces line breaks with single spaces; used for header values.
func FoldLines(s string) string {
	return lineBreaks.Replace(s)
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// Templates format through bold, link and button instead of literal markdown
// so the plain-text part carries no markup. Arguments other than the
// results of escape and mailto must be trusted template literals.
func htmlFuncs() texttemplate.FuncMap {
	return texttemplate.FuncMap{
		"escape": EscapeMarkdown,
		"mailto": MailtoURL,
		"bold":   func(s string) string { return "**" + s + "**" },
		"link":   func(label, href string) string { return "[" + label + "](" + href + ")" },
		"button": func(label, href string) string { return "[!button|" + label + "](" + href + ")" },
	}
}

func textFuncs() texttemplate.FuncMap {
	return texttemplate.FuncMap{
		"escape": func(s string) string { return s },
		"mailto": func(s string) string { return strings.TrimSpace(s) },
		"bold":   func(s string) string { return s },
		"link":   textLink,
		"button": func(label, href string) string { return label + ": " + href },
	}
}

func textLink(label, href string) string {
	if label == href {
		return label
	}
	return label + " <" + href + ">"
}
