package notifications

import (
	"fmt"
	"html"

	"github.com/luxerealty/luxerealty-backend/pkg/outbox/payloads"
)

// Email is a composed message ready for the provider.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// Recipient is the resolved destination for a ticket notification.
type Recipient struct {
	Email string
	Name  string
}

// Ticket fields are user-supplied, so every interpolation is escaped before
// it reaches an HTML body.

func composeTicketCreated(to Recipient, event payloads.TicketCreatedEvent) Email {
	subject := fmt.Sprintf("Support Ticket Received - %s", event.Subject)
	body := fmt.Sprintf(
		"<h2>We received your request</h2>"+
			"<p>Hi %s,</p>"+
			"<p>Your support ticket <strong>%s</strong> has been received and our team will follow up shortly.</p>"+
			"<p>Priority: %s</p>",
		html.EscapeString(displayName(to)),
		html.EscapeString(event.Subject),
		html.EscapeString(string(event.Priority)),
	)
	return Email{To: to.Email, Subject: subject, HTML: body}
}

func composeTicketUpdated(to Recipient, event payloads.TicketUpdatedEvent) Email {
	subject := fmt.Sprintf("Support Ticket Updated - %s", event.Subject)
	body := fmt.Sprintf(
		"<h2>Your ticket was updated</h2>"+
			"<p>Hi %s,</p>"+
			"<p>Status changed to <strong>%s</strong> on ticket <strong>%s</strong>.</p>",
		html.EscapeString(displayName(to)),
		html.EscapeString(string(event.Status)),
		html.EscapeString(event.Subject),
	)
	return Email{To: to.Email, Subject: subject, HTML: body}
}

func composeReplyAdded(to Recipient, subject string, event payloads.ReplyAddedEvent) Email {
	title := fmt.Sprintf("New Reply - %s", subject)
	body := fmt.Sprintf(
		"<h2>New reply on your ticket</h2>"+
			"<p>Hi %s,</p>"+
			"<p>Our team replied to <strong>%s</strong>:</p>"+
			"<blockquote>%s</blockquote>",
		html.EscapeString(displayName(to)),
		html.EscapeString(subject),
		html.EscapeString(event.Message),
	)
	return Email{To: to.Email, Subject: title, HTML: body}
}

func displayName(to Recipient) string {
	if to.Name != "" {
		return to.Name
	}
	return "there"
}
