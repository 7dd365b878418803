// Package mail implements the outbound Mailer port over SMTP using
// gomail. The notification dispatcher renders messages; this adapter
// only delivers them.
package mail

import (
	"context"

	"gopkg.in/gomail.v2"

	"fastfeet/internal/core/ports"
)

// SMTPMailer sends mail through one SMTP server. A fresh connection is
// dialed per message; notification volume is a handful of mails per
// order, not a bulk stream.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a mailer for the given SMTP endpoint.
// The from address is used as sender on every message.
func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers one rendered message.
func (m *SMTPMailer) Send(_ context.Context, msg ports.MailMessage) error {
	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", msg.Subject)
	message.SetBody("text/plain", msg.Body)

	return m.dialer.DialAndSend(message)
}
