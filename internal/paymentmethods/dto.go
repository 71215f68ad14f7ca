package paymentmethods

import (
	"time"

	"github.com/google/uuid"

	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
)

// PaymentMethodDTO is the saved instrument returned to clients. Only display
// data leaves the API; full numbers are never stored.
type PaymentMethodDTO struct {
	ID                  uuid.UUID `json:"id"`
	MethodType          string    `json:"method_type"`
	CardHolderName      *string   `json:"card_holder_name,omitempty"`
	CardLastFour        *string   `json:"card_last_four,omitempty"`
	CardBrand           *string   `json:"card_brand,omitempty"`
	BankName            *string   `json:"bank_name,omitempty"`
	BankAccountLastFour *string   `json:"bank_account_last_four,omitempty"`
	PaypalEmail         *string   `json:"paypal_email,omitempty"`
	IsDefault           bool      `json:"is_default"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// NewPaymentMethodDTO builds a DTO from the persisted model.
func NewPaymentMethodDTO(method *models.PaymentMethod) *PaymentMethodDTO {
	if method == nil {
		return nil
	}
	return &PaymentMethodDTO{
		ID:                  method.ID,
		MethodType:          string(method.MethodType),
		CardHolderName:      method.CardHolderName,
		CardLastFour:        method.CardLastFour,
		CardBrand:           method.CardBrand,
		BankName:            method.BankName,
		BankAccountLastFour: method.BankAccountLastFour,
		PaypalEmail:         method.PaypalEmail,
		IsDefault:           method.IsDefault,
		CreatedAt:           method.CreatedAt,
		UpdatedAt:           method.UpdatedAt,
	}
}

// NewPaymentMethodDTOs maps a model slice into response DTOs.
func NewPaymentMethodDTOs(methods []models.PaymentMethod) []PaymentMethodDTO {
	dtos := make([]PaymentMethodDTO, 0, len(methods))
	for i := range methods {
		dtos = append(dtos, *NewPaymentMethodDTO(&methods[i]))
	}
	return dtos
}

// CreatePaymentMethodInput captures a new saved instrument. Which display
// fields are required depends on method_type and is enforced by the service.
type CreatePaymentMethodInput struct {
	MethodType          string  `json:"method_type" validate:"required,oneof=credit_card bank_account paypal"`
	CardHolderName      *string `json:"card_holder_name" validate:"omitempty,min=1,max=100"`
	CardLastFour        *string `json:"card_last_four" validate:"omitempty,len=4,numeric"`
	CardBrand           *string `json:"card_brand" validate:"omitempty,min=1,max=50"`
	BankName            *string `json:"bank_name" validate:"omitempty,min=1,max=100"`
	BankAccountLastFour *string `json:"bank_account_last_four" validate:"omitempty,len=4,numeric"`
	PaypalEmail         *string `json:"paypal_email" validate:"omitempty,email,max=255"`
	IsDefault           bool    `json:"is_default"`
}
