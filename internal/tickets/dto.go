package tickets

import (
	"time"

	"github.com/google/uuid"

	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
)

// TicketDTO represents a helpdesk conversation returned to clients.
type TicketDTO struct {
	ID         uuid.UUID  `json:"id"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	GuestName  *string    `json:"guest_name,omitempty"`
	GuestEmail *string    `json:"guest_email,omitempty"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	AdminNotes *string    `json:"admin_notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ReplyDTO is one conversation message.
type ReplyDTO struct {
	ID           uuid.UUID  `json:"id"`
	TicketID     uuid.UUID  `json:"ticket_id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	Message      string     `json:"message"`
	IsAdminReply bool       `json:"is_admin_reply"`
	CreatedAt    time.Time  `json:"created_at"`
}

// NewTicketDTO builds a DTO from the model. Admin notes are an internal
// field and only included for back-office readers.
func NewTicketDTO(ticket *models.SupportTicket, includeAdminNotes bool) *TicketDTO {
	if ticket == nil {
		return nil
	}
	dto := &TicketDTO{
		ID:         ticket.ID,
		UserID:     ticket.UserID,
		GuestName:  ticket.GuestName,
		GuestEmail: ticket.GuestEmail,
		Subject:    ticket.Subject,
		Message:    ticket.Message,
		Status:     string(ticket.Status),
		Priority:   string(ticket.Priority),
		CreatedAt:  ticket.CreatedAt,
		UpdatedAt:  ticket.UpdatedAt,
	}
	if includeAdminNotes {
		dto.AdminNotes = ticket.AdminNotes
	}
	return dto
}

// NewTicketDTOs maps a model slice into response DTOs.
func NewTicketDTOs(ticketRows []models.SupportTicket, includeAdminNotes bool) []TicketDTO {
	dtos := make([]TicketDTO, 0, len(ticketRows))
	for i := range ticketRows {
		dtos = append(dtos, *NewTicketDTO(&ticketRows[i], includeAdminNotes))
	}
	return dtos
}

// NewReplyDTO builds a reply DTO from the model.
func NewReplyDTO(reply *models.TicketReply) *ReplyDTO {
	if reply == nil {
		return nil
	}
	return &ReplyDTO{
		ID:           reply.ID,
		TicketID:     reply.TicketID,
		UserID:       reply.UserID,
		Message:      reply.Message,
		IsAdminReply: reply.IsAdminReply,
		CreatedAt:    reply.CreatedAt,
	}
}

// NewReplyDTOs maps a reply slice into response DTOs.
func NewReplyDTOs(replies []models.TicketReply) []ReplyDTO {
	dtos := make([]ReplyDTO, 0, len(replies))
	for i := range replies {
		dtos = append(dtos, *NewReplyDTO(&replies[i]))
	}
	return dtos
}

// CreateTicketInput captures a new helpdesk request. Status is always forced
// to open on creation regardless of what the client sends.
type CreateTicketInput struct {
	Subject    string  `json:"subject" validate:"required,min=1,max=200"`
	Message    string  `json:"message" validate:"required,min=1,max=2000"`
	Priority   string  `json:"priority" validate:"omitempty"`
	GuestName  *string `json:"guest_name" validate:"omitempty,min=1,max=100"`
	GuestEmail *string `json:"guest_email" validate:"omitempty,email,max=255"`
}

// AddReplyInput appends one message to an open conversation.
type AddReplyInput struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// UpdateStatusInput moves a ticket through its workflow.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// UpdateNotesInput replaces the internal triage notes.
type UpdateNotesInput struct {
	AdminNotes string `json:"admin_notes" validate:"max=5000"`
}

// ListAllQuery configures the back-office ticket list.
type ListAllQuery struct {
	Status *string
	Limit  int
	Cursor string
}
