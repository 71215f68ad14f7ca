package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luxerealty/luxerealty-backend/pkg/enums"
)

// TourRequest is a showing request for a specific listing.
type TourRequest struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	PropertyID    uuid.UUID        `gorm:"column:property_id;type:uuid;not null;index"`
	Property      *Property        `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Name          string           `gorm:"column:name;not null"`
	Email         string           `gorm:"column:email;not null"`
	Phone         *string          `gorm:"column:phone"`
	PreferredDate time.Time        `gorm:"column:preferred_date;not null"`
	Message       *string          `gorm:"column:message"`
	Status        enums.TourStatus `gorm:"column:status;type:tour_status;not null;default:'pending';index"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (t *TourRequest) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
