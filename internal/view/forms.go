package view

import (
	"strconv"

	"github.com/larekshop/storefront/pkg/enums"
	"github.com/larekshop/storefront/pkg/events"
)

// ShippingForm is the payment+address step surface.
type ShippingForm struct {
	bus     events.Publisher
	root    *Node
	payment *Node
	address *Node
	errSlot *Node
	next    *Node
}

// ShippingFormPatch is the form's partial attribute set.
type ShippingFormPatch struct {
	Payment *enums.PaymentMethod
	Address *string
	Error   *string
	Valid   *bool
}

// NewShippingForm builds the payment+address surface.
func NewShippingForm(bus events.Publisher) *ShippingForm {
	root := NewNode("order-form")
	payment := NewNode("order-payment")
	address := NewNode("order-address")
	errSlot := NewNode("form-errors")
	next := NewNode("order-next")
	next.SetAttr("disabled", "true")
	root.ReplaceChildren(payment, address, errSlot, next)
	return &ShippingForm{bus: bus, root: root, payment: payment, address: address, errSlot: errSlot, next: next}
}

// Apply assigns the fields present in the patch and returns the root.
func (f *ShippingForm) Apply(patch ShippingFormPatch) *Node {
	if patch.Payment != nil {
		f.payment.SetAttr("selected", patch.Payment.String())
	}
	if patch.Address != nil {
		f.address.SetText(*patch.Address)
	}
	if patch.Error != nil {
		f.errSlot.SetText(*patch.Error)
	}
	if patch.Valid != nil {
		f.next.SetAttr("disabled", strconv.FormatBool(!*patch.Valid))
	}
	return f.root
}

// Root returns the form's root handle.
func (f *ShippingForm) Root() *Node {
	return f.root
}

// Error exposes the rendered error slot.
func (f *ShippingForm) Error() string {
	return f.errSlot.Text()
}

// NextEnabled reports whether the forward control is live.
func (f *ShippingForm) NextEnabled() bool {
	return f.next.Attr("disabled") == "false"
}

// ChoosePayment simulates clicking one of the payment option buttons.
func (f *ShippingForm) ChoosePayment(method enums.PaymentMethod) {
	if f.bus != nil {
		f.bus.Emit(events.PaymentChosen{Method: method})
	}
}

// TypeAddress simulates an edit of the address field.
func (f *ShippingForm) TypeAddress(value string) {
	if f.bus != nil {
		f.bus.Emit(events.AddressChanged{Value: value})
	}
}

// Submit simulates submitting the form. Gating happens downstream; an
// invalid submit leaves the surface in place with the error populated.
func (f *ShippingForm) Submit() {
	if f.bus != nil {
		f.bus.Emit(events.ShippingSubmitted{})
	}
}

// ContactForm is the email+phone step surface.
type ContactForm struct {
	bus     events.Publisher
	root    *Node
	email   *Node
	phone   *Node
	errSlot *Node
	next    *Node
}

// ContactFormPatch is the form's partial attribute set.
type ContactFormPatch struct {
	Email *string
	Phone *string
	Error *string
	Valid *bool
}

// NewContactForm builds the contact info surface.
func NewContactForm(bus events.Publisher) *ContactForm {
	root := NewNode("contacts-form")
	email := NewNode("contacts-email")
	phone := NewNode("contacts-phone")
	errSlot := NewNode("form-errors")
	next := NewNode("contacts-next")
	next.SetAttr("disabled", "true")
	root.ReplaceChildren(email, phone, errSlot, next)
	return &ContactForm{bus: bus, root: root, email: email, phone: phone, errSlot: errSlot, next: next}
}

// Apply assigns the fields present in the patch and returns the root.
func (f *ContactForm) Apply(patch ContactFormPatch) *Node {
	if patch.Email != nil {
		f.email.SetText(*patch.Email)
	}
	if patch.Phone != nil {
		f.phone.SetText(*patch.Phone)
	}
	if patch.Error != nil {
		f.errSlot.SetText(*patch.Error)
	}
	if patch.Valid != nil {
		f.next.SetAttr("disabled", strconv.FormatBool(!*patch.Valid))
	}
	return f.root
}

// Root returns the form's root handle.
func (f *ContactForm) Root() *Node {
	return f.root
}

// Error exposes the rendered error slot.
func (f *ContactForm) Error() string {
	return f.errSlot.Text()
}

// NextEnabled reports whether the forward control is live.
func (f *ContactForm) NextEnabled() bool {
	return f.next.Attr("disabled") == "false"
}

// TypeEmail simulates an edit of the email field.
func (f *ContactForm) TypeEmail(value string) {
	if f.bus != nil {
		f.bus.Emit(events.EmailChanged{Value: value})
	}
}

// TypePhone simulates an edit of the phone field.
func (f *ContactForm) TypePhone(value string) {
	if f.bus != nil {
		f.bus.Emit(events.PhoneChanged{Value: value})
	}
}

// Submit simulates submitting the form.
func (f *ContactForm) Submit() {
	if f.bus != nil {
		f.bus.Emit(events.ContactsSubmitted{})
	}
}
