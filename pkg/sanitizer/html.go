// Package sanitizer cleans HTML produced from user-supplied content
// before it leaves the process in an email or a page.
package sanitizer

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var buttonClass = regexp.MustCompile(`^btn$`)

var (
	emailPolicy *bluemonday.Policy
	initOnce    sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// Elements goldmark emits for notification templates. Styling lives in
		// the trusted layout; the only class let through marks button links.
		emailPolicy = bluemonday.NewPolicy()
		emailPolicy.AllowStandardURLs()
		emailPolicy.AllowElements(
			"h1", "h2", "h3", "p", "br", "hr",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		emailPolicy.AllowAttrs("href").OnElements("a")
		emailPolicy.AllowAttrs("class").Matching(buttonClass).OnElements("a")
		emailPolicy.RequireNoFollowOnLinks(true)
	})
}

// SanitizeHTML keeps the basic formatting tags a rendered email fragment
// uses (headings, paragraphs, line breaks, emphasis, lists, links with
// http, https or mailto URLs) and drops everything else, including scripts,
// event handlers, inline styles and javascript: URLs.
func SanitizeHTML(s string) string {
	initPolicies()
	return emailPolicy.Sanitize(s)
}
