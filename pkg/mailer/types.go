package mailer

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Tags are provider-specific labels. Presence-only tags use struct{}{} as value.
type Tags map[string]any

// SimpleTags creates presence-only tags.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Names returns the tag names in sorted order.
func (t Tags) Names() []string {
	names := make([]string, 0, len(t))
	for n := range t {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// TagValue converts a tag value to the string form providers accept.
// Presence-only tags become "true".
func TagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// Recipient formats a name and address as "Name <email>", or just the
// address when name is empty.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// SplitAddresses parses a comma-separated address list, dropping blanks.
func SplitAddresses(list string) []string {
	var out []string
	for part := range strings.SplitSeq(list, ",") {
		if addr := strings.TrimSpace(part); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// Email is a fully prepared message ready for a Sender.
type Email struct {
	Headers map[string]string
	Tags    Tags
	Subject string
	HTML    string
	Text    string // plain-text alternative
	From    string // overrides the provider's configured sender when set
	ReplyTo string
	To      []string
	CC      []string
	BCC     []string
}

// Validate reports whether the email has the minimum a provider needs.
func (e *Email) Validate() error {
	switch {
	case len(e.To) == 0:
		return ErrNoRecipient
	case strings.TrimSpace(e.Subject) == "":
		return ErrNoSubject
	case strings.TrimSpace(e.HTML) == "":
		return ErrNoContent
	}
	return nil
}
