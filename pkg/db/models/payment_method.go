package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luxerealty/luxerealty-backend/pkg/enums"
)

// PaymentMethod stores a customer's saved billing instrument. Only display
// data is kept; never full card or account numbers.
type PaymentMethod struct {
	ID                  uuid.UUID               `gorm:"column:id;type:uuid;primaryKey"`
	UserID              uuid.UUID               `gorm:"column:user_id;type:uuid;not null;index"`
	MethodType          enums.PaymentMethodType `gorm:"column:method_type;type:payment_method_type;not null"`
	CardHolderName      *string                 `gorm:"column:card_holder_name"`
	CardLastFour        *string                 `gorm:"column:card_last_four"`
	CardBrand           *string                 `gorm:"column:card_brand"`
	BankName            *string                 `gorm:"column:bank_name"`
	BankAccountLastFour *string                 `gorm:"column:bank_account_last_four"`
	PaypalEmail         *string                 `gorm:"column:paypal_email"`
	IsDefault           bool                    `gorm:"column:is_default;not null;default:false"`
	CreatedAt           time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}

func (p *PaymentMethod) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
