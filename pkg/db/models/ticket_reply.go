package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketReply is one append-only message in a ticket conversation.
type TicketReply struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	TicketID     uuid.UUID  `gorm:"column:ticket_id;type:uuid;not null;index"`
	UserID       *uuid.UUID `gorm:"column:user_id;type:uuid"`
	Message      string     `gorm:"column:message;not null"`
	IsAdminReply bool       `gorm:"column:is_admin_reply;not null;default:false"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (r *TicketReply) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
