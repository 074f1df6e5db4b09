package domain

// EmailSender delivers a plain-text message. Delivery is best-effort and
// invoked off the request path; a failure never rolls back the issuing call.
type EmailSender interface {
	Send(to, subject, body string) error
}
