package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/luxerealty/luxerealty-backend/pkg/enums"
)

// Profile mirrors the identity provider's user record. The ID is the auth
// subject, so no default is generated here.
type Profile struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	Email     string         `gorm:"column:email;not null;uniqueIndex"`
	FullName  *string        `gorm:"column:full_name"`
	Phone     *string        `gorm:"column:phone"`
	Role      enums.UserRole `gorm:"column:role;type:user_role;not null;default:'customer'"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
