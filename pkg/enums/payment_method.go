package enums

import "fmt"

// PaymentMethod describes how a buyer intends to settle an order. The zero
// value means no method has been chosen yet.
type PaymentMethod string

const (
	PaymentMethodUnset      PaymentMethod = ""
	PaymentMethodOnline     PaymentMethod = "online"
	PaymentMethodOnDelivery PaymentMethod = "on_delivery"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodOnline,
	PaymentMethodOnDelivery,
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsValid reports whether the value is a chosen, known PaymentMethod.
func (p PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, candidate := range validPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method %q", value)
}
