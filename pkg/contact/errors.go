package contact

import (
	"errors"
	"strings"
)

// ErrDelivery marks a failure reported by the email provider, whatever the cause.
var ErrDelivery = errors.New("contact: email delivery failed")

// ValidationMessage is the public message for any incomplete submission.
const ValidationMessage = "All fields are required"

// ValidationError reports required fields that were empty after trimming.
type ValidationError struct {
	Missing []string // JSON field names, in form order
}

func (e *ValidationError) Error() string {
	return ValidationMessage
}

// Detail lists the missing fields; for logs only.
func (e *ValidationError) Detail() string {
	return "missing: " + strings.Join(e.Missing, ", ")
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
