package contact

import "strings"

// Submission is one contact form payload. It is never stored.
type Submission struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Title        string `json:"title"`
	Email        string `json:"email"`
	Message      string `json:"message"`
}

// Validate checks that every field is non-empty after trimming whitespace.
// The email address format is not checked.
func Validate(s Submission) error {
	fields := [...]struct {
		name  string
		value string
	}{
		{"name", s.Name},
		{"organization", s.Organization},
		{"title", s.Title},
		{"email", s.Email},
		{"message", s.Message},
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Validate is shorthand for Validate(s).
func (s Submission) Validate() error {
	return Validate(s)
}
