package events

import "github.com/larekshop/storefront/pkg/enums"

// Kind names one variant of the closed storefront event set. Handlers
// registered for the same kind run in registration order; no ordering is
// promised across kinds.
type Kind string

const (
	// KindAny subscribes a handler to every emitted event.
	KindAny Kind = "*"

	KindCatalogLoaded     Kind = "catalog:loaded"
	KindProductAdded      Kind = "catalog:product_added"
	KindCardSelected      Kind = "card:selected"
	KindCartToggled       Kind = "cart:toggled"
	KindCartChanged       Kind = "cart:changed"
	KindBasketOpened      Kind = "basket:opened"
	KindBasketLineRemoved Kind = "basket:line_removed"
	KindOrderStarted      Kind = "order:started"
	KindPaymentChosen     Kind = "order:payment_chosen"
	KindAddressChanged    Kind = "order:address_changed"
	KindShippingSubmitted Kind = "order:shipping_submitted"
	KindEmailChanged      Kind = "order:email_changed"
	KindPhoneChanged      Kind = "order:phone_changed"
	KindContactsSubmitted Kind = "order:contacts_submitted"
	KindOrderCompleted    Kind = "order:completed"
	KindModalDismissed    Kind = "modal:dismissed"
)

// Event is the tagged union over storefront event payloads. Each concrete
// payload pins its own Kind, so dispatch is exhaustively checkable.
type Event interface {
	EventKind() Kind
}

// CatalogLoaded fires after the catalog collection is replaced wholesale.
type CatalogLoaded struct{}

// ProductAdded fires after a single product is prepended to the catalog.
type ProductAdded struct {
	ProductID string
}

// CardSelected fires when a catalog card is clicked open.
type CardSelected struct {
	ProductID string
}

// CartToggled fires when the add/remove button on the detail surface is
// pressed. The effect depends on current cart membership.
type CartToggled struct {
	ProductID string
}

// CartChanged fires after the draft's item list is mutated.
type CartChanged struct{}

// BasketOpened fires when the basket icon is clicked.
type BasketOpened struct{}

// BasketLineRemoved fires when a basket line's remove control is pressed.
type BasketLineRemoved struct {
	ProductID string
}

// OrderStarted fires when "place order" is pressed on the basket surface.
type OrderStarted struct{}

// PaymentChosen fires when a payment option is clicked on the shipping form.
type PaymentChosen struct {
	Method enums.PaymentMethod
}

// AddressChanged fires on every edit of the delivery address field.
type AddressChanged struct {
	Value string
}

// ShippingSubmitted fires when the shipping form is submitted.
type ShippingSubmitted struct{}

// EmailChanged fires on every edit of the email field.
type EmailChanged struct {
	Value string
}

// PhoneChanged fires on every edit of the phone field.
type PhoneChanged struct {
	Value string
}

// ContactsSubmitted fires when the contact form is submitted.
type ContactsSubmitted struct{}

// OrderCompleted fires when "continue shopping" is pressed on the
// confirmation surface.
type OrderCompleted struct{}

// ModalDismissed fires whenever the modal closes, regardless of how.
type ModalDismissed struct{}

func (CatalogLoaded) EventKind() Kind     { return KindCatalogLoaded }
func (ProductAdded) EventKind() Kind      { return KindProductAdded }
func (CardSelected) EventKind() Kind      { return KindCardSelected }
func (CartToggled) EventKind() Kind       { return KindCartToggled }
func (CartChanged) EventKind() Kind       { return KindCartChanged }
func (BasketOpened) EventKind() Kind      { return KindBasketOpened }
func (BasketLineRemoved) EventKind() Kind { return KindBasketLineRemoved }
func (OrderStarted) EventKind() Kind      { return KindOrderStarted }
func (PaymentChosen) EventKind() Kind     { return KindPaymentChosen }
func (AddressChanged) EventKind() Kind    { return KindAddressChanged }
func (ShippingSubmitted) EventKind() Kind { return KindShippingSubmitted }
func (EmailChanged) EventKind() Kind      { return KindEmailChanged }
func (PhoneChanged) EventKind() Kind      { return KindPhoneChanged }
func (ContactsSubmitted) EventKind() Kind { return KindContactsSubmitted }
func (OrderCompleted) EventKind() Kind    { return KindOrderCompleted }
func (ModalDismissed) EventKind() Kind    { return KindModalDismissed }
