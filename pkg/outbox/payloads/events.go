package payloads

import (
	"github.com/google/uuid"

	"github.com/luxerealty/luxerealty-backend/pkg/enums"
)

// TicketCreatedEvent signals a new support ticket awaiting triage.
type TicketCreatedEvent struct {
	TicketID uuid.UUID            `json:"ticketId"`
	Subject  string               `json:"subject"`
	Priority enums.TicketPriority `json:"priority"`
}

// TicketUpdatedEvent is emitted when an admin changes ticket state the
// requester should hear about.
type TicketUpdatedEvent struct {
	TicketID      uuid.UUID          `json:"ticketId"`
	Subject       string             `json:"subject"`
	Status        enums.TicketStatus `json:"status"`
	UpdatedFields []string           `json:"updatedFields"`
}

// ReplyAddedEvent carries a new conversation message for email fan-out.
type ReplyAddedEvent struct {
	TicketID     uuid.UUID `json:"ticketId"`
	ReplyID      uuid.UUID `json:"replyId"`
	Message      string    `json:"message"`
	IsAdminReply bool      `json:"isAdminReply"`
}
