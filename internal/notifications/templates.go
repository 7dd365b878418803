package notifications

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"fastfeet/internal/core/ports"
)

// Email subjects, one per lifecycle transition.
const (
	SubjectConfirmation = "Encomenda disponível para retirada"
	SubjectEndDate      = "Data final de envio confirmada"
	SubjectCancellation = "Encomenda cancelada"
)

var longDateMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatLongDate renders a timestamp in the fixed localized long form used
// by every notification, e.g. "dia 10 de janeiro, às 10:00h".
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("dia %02d de %s, às %d:%02dh",
		t.Day(), longDateMonths[t.Month()-1], t.Hour(), t.Minute())
}

var (
	confirmationTemplate = template.Must(template.New("confirmation").Parse(
		`Olá, {{.Courier}}!

A encomenda "{{.Product}}" de {{.Recipient}} está disponível para retirada {{.Date}}.

Endereço de entrega:
{{.Street}}, {{.Number}}{{if .Details}} ({{.Details}}){{end}}
{{.City}} - {{.State}}, {{.PostalCode}}
`))

	endDateTemplate = template.Must(template.New("enddate").Parse(
		`Olá, {{.Courier}}!

A encomenda "{{.Product}}" de {{.Recipient}} foi entregue.

Retirada: {{.StartDate}}
Entrega: {{.EndDate}}

Endereço de entrega:
{{.Street}}, {{.Number}}{{if .Details}} ({{.Details}}){{end}}
{{.City}} - {{.State}}, {{.PostalCode}}
`))

	cancellationTemplate = template.Must(template.New("cancellation").Parse(
		`Olá, {{.Courier}}!

A encomenda "{{.Product}}" de {{.Recipient}}, com retirada marcada para {{.Date}}, foi cancelada.
`))
)

func renderTemplate(tmpl *template.Template, context map[string]string) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, context); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}

func recipientContext(r RecipientPayload) map[string]string {
	return map[string]string{
		"Recipient":  r.Name,
		"Street":     r.Street,
		"Number":     r.Number,
		"Details":    r.Details,
		"State":      r.State,
		"City":       r.City,
		"PostalCode": r.PostalCode,
	}
}

func mailAddress(c CourierPayload) string {
	return fmt.Sprintf("%s <%s>", c.Name, c.Email)
}

// ConfirmationMessage renders the email telling the courier a new order
// is ready for pickup.
func ConfirmationMessage(p CreatedPayload) (ports.MailMessage, error) {
	context := recipientContext(p.Recipient)
	context["Courier"] = p.Courier.Name
	context["Product"] = p.Order.Product
	context["Date"] = FormatLongDate(p.Order.StartDate)

	body, err := renderTemplate(confirmationTemplate, context)
	if err != nil {
		return ports.MailMessage{}, err
	}

	return ports.MailMessage{
		To:      mailAddress(p.Courier),
		Subject: SubjectConfirmation,
		Body:    body,
	}, nil
}

// EndDateMessage renders the email confirming the delivery end date.
func EndDateMessage(p FinishedPayload) (ports.MailMessage, error) {
	if p.Order.EndDate == nil {
		return ports.MailMessage{}, fmt.Errorf("order %d has no end date", p.Order.ID)
	}

	context := recipientContext(p.Recipient)
	context["Courier"] = p.Courier.Name
	context["Product"] = p.Order.Product
	context["StartDate"] = FormatLongDate(p.Order.StartDate)
	context["EndDate"] = FormatLongDate(*p.Order.EndDate)

	body, err := renderTemplate(endDateTemplate, context)
	if err != nil {
		return ports.MailMessage{}, err
	}

	return ports.MailMessage{
		To:      mailAddress(p.Courier),
		Subject: SubjectEndDate,
		Body:    body,
	}, nil
}

// CancellationMessage renders the email telling the courier an order
// was canceled.
func CancellationMessage(p CanceledPayload) (ports.MailMessage, error) {
	context := recipientContext(p.Recipient)
	context["Courier"] = p.Courier.Name
	context["Product"] = p.Order.Product
	context["Date"] = FormatLongDate(p.Order.StartDate)

	body, err := renderTemplate(cancellationTemplate, context)
	if err != nil {
		return ports.MailMessage{}, err
	}

	return ports.MailMessage{
		To:      mailAddress(p.Courier),
		Subject: SubjectCancellation,
		Body:    body,
	}, nil
}
