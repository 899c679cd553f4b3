package enums

import "fmt"

// CheckoutStep identifies which screen of the storefront wizard is active.
type CheckoutStep string

const (
	StepCatalog       CheckoutStep = "catalog"
	StepProductDetail CheckoutStep = "product_detail"
	StepBasket        CheckoutStep = "basket"
	StepShipping      CheckoutStep = "shipping"
	StepContacts      CheckoutStep = "contacts"
	StepConfirmation  CheckoutStep = "confirmation"
)

var validCheckoutSteps = []CheckoutStep{
	StepCatalog,
	StepProductDetail,
	StepBasket,
	StepShipping,
	StepContacts,
	StepConfirmation,
}

// String implements fmt.Stringer.
func (s CheckoutStep) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CheckoutStep.
func (s CheckoutStep) IsValid() bool {
	for _, candidate := range validCheckoutSteps {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCheckoutStep converts raw input into a CheckoutStep.
func ParseCheckoutStep(value string) (CheckoutStep, error) {
	for _, candidate := range validCheckoutSteps {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid checkout step %q", value)
}
