package enums

import "fmt"

// PaymentMethodType maps to the payment_method_type enum in Postgres.
type PaymentMethodType string

const (
	PaymentMethodTypeCreditCard  PaymentMethodType = "credit_card"
	PaymentMethodTypeBankAccount PaymentMethodType = "bank_account"
	PaymentMethodTypePayPal      PaymentMethodType = "paypal"
)

var validPaymentMethodTypes = []PaymentMethodType{
	PaymentMethodTypeCreditCard,
	PaymentMethodTypeBankAccount,
	PaymentMethodTypePayPal,
}

// String implements fmt.Stringer.
func (p PaymentMethodType) String() string {
	return string(p)
}

// IsValid reports whether the value is known.
func (p PaymentMethodType) IsValid() bool {
	for _, candidate := range validPaymentMethodTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentMethodType converts raw input into a PaymentMethodType.
func ParsePaymentMethodType(value string) (PaymentMethodType, error) {
	for _, candidate := range validPaymentMethodTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method type %q", value)
}
