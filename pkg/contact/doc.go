// Package contact validates contact form submissions and relays them to the
// organisers as a branded notification email.
//
// A Relay is built once at startup and shared by all requests:
//
//	m := mailer.New(sender, contact.NewRenderer(), mailer.Config{})
//	relay := contact.NewRelay(m, cfg, contact.WithMetrics(cm), contact.WithProvider("resend"))
//
//	id, err := relay.Notify(ctx, submission)
//	switch {
//	case contact.IsValidationError(err):
//	    // 400
//	case errors.Is(err, contact.ErrDelivery):
//	    // 500 "Failed to send email"
//	case err != nil:
//	    // 500 "Internal server error"
//	}
//
// User-supplied values never reach the email as markup. The embedded
// template passes every field through the mailer's escape func, goldmark
// HTML-escapes the result and the rendered fragment is sanitised before it
// is placed into the layout. Line breaks in the message become <br>.
package contact
