package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luxerealty/luxerealty-backend/pkg/enums"
)

// Notification records an outbound email triggered by a ticket event.
type Notification struct {
	ID         uuid.UUID               `gorm:"column:id;type:uuid;primaryKey"`
	TicketID   uuid.UUID               `gorm:"column:ticket_id;type:uuid;not null;index"`
	Event      enums.NotificationEvent `gorm:"column:event;type:notification_event;not null"`
	Recipient  string                  `gorm:"column:recipient;not null"`
	Subject    string                  `gorm:"column:subject;not null"`
	ProviderID *string                 `gorm:"column:provider_id"`
	CreatedAt  time.Time               `gorm:"column:created_at;autoCreateTime"`
}

func (n *Notification) BeforeCreate(_ *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
