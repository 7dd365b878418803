package ports

import "context"

// MailMessage is a rendered email ready for transport.
type MailMessage struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers rendered notification emails. Delivery is best-effort:
// a single attempt whose failure is reported to the caller and otherwise
// opaque to the workflow.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
