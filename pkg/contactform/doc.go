// Package contactform is the client side of the contact form: a small state
// machine that captures the five fields, checks them for presence and posts
// them to the site's /api/contact endpoint.
//
// The browser page runs the same machine in web/static/contact.js; this
// package is what smoke checks and tests drive.
//
//	f := contactform.New("https://summit.example/api/contact")
//	f.Open()
//	if err := f.Submit(ctx, fields); err != nil {
//	    // contact.IsValidationError(err): nothing was sent
//	    // errors.Is(err, contactform.ErrSubmitFailed): fields kept, try again
//	}
//
// After a successful submission the form clears its fields, and after the
// reset delay it returns to idle and closes.
package contactform
