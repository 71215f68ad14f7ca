package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luxerealty/luxerealty-backend/pkg/enums"
)

// SupportTicket is a helpdesk conversation root. UserID is nil for guest
// tickets, in which case the guest_* columns identify the requester.
type SupportTicket struct {
	ID         uuid.UUID            `gorm:"column:id;type:uuid;primaryKey"`
	UserID     *uuid.UUID           `gorm:"column:user_id;type:uuid;index"`
	GuestName  *string              `gorm:"column:guest_name"`
	GuestEmail *string              `gorm:"column:guest_email"`
	Subject    string               `gorm:"column:subject;not null"`
	Message    string               `gorm:"column:message;not null"`
	Status     enums.TicketStatus   `gorm:"column:status;type:ticket_status;not null;default:'open';index"`
	Priority   enums.TicketPriority `gorm:"column:priority;type:ticket_priority;not null;default:'normal'"`
	AdminNotes *string              `gorm:"column:admin_notes"`
	Replies    []TicketReply        `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time            `gorm:"column:created_at;autoCreateTime;index:idx_support_tickets_created_at,sort:desc"`
	UpdatedAt  time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}

func (t *SupportTicket) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
