package enums

import "fmt"

// NotificationEvent identifies which ticket lifecycle change triggered an email.
type NotificationEvent string

const (
	NotificationEventTicketCreated NotificationEvent = "ticket_created"
	NotificationEventTicketUpdated NotificationEvent = "ticket_updated"
	NotificationEventReplyAdded    NotificationEvent = "reply_added"
)

var validNotificationEvents = []NotificationEvent{
	NotificationEventTicketCreated,
	NotificationEventTicketUpdated,
	NotificationEventReplyAdded,
}

// String implements fmt.Stringer.
func (n NotificationEvent) String() string {
	return string(n)
}

// IsValid checks whether the given event matches the canonical enum.
func (n NotificationEvent) IsValid() bool {
	for _, candidate := range validNotificationEvents {
		if candidate == n {
			return true
		}
	}
	return false
}

// ParseNotificationEvent converts raw strings into NotificationEvent.
func ParseNotificationEvent(value string) (NotificationEvent, error) {
	for _, candidate := range validNotificationEvents {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid notification event %q", value)
}
