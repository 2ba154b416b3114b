package contactform

import "errors"

var (
	ErrSubmitInProgress = errors.New("contactform: submission already in progress")
	ErrSubmitFailed     = errors.New("contactform: submission failed")
)
