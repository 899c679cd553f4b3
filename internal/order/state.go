// Package order holds the in-progress order draft and its step validation.
package order

import (
	"github.com/larekshop/storefront/pkg/enums"
	"github.com/larekshop/storefront/pkg/events"
)

// Validation messages surfaced in a step's error slot. The first unmet
// requirement wins: payment before address, email before phone.
const (
	MsgChoosePayment = "select a payment method"
	MsgEnterAddress  = "enter the delivery address"
	MsgEnterEmail    = "enter your email"
	MsgEnterPhone    = "enter your phone number"
)

// Draft is the not-yet-submitted order. Invalid drafts are representable;
// gating on validity is the orchestrator's job, never this package's.
type Draft struct {
	Payment enums.PaymentMethod
	Email   string
	Phone   string
	Address string
	Items   []string
}

// Patch is a partial update over the draft's scalar fields. Nil fields are
// left untouched. Items are deliberately absent: they move only through
// AddItem, RemoveItem and SetItems so cart-count displays stay in sync.
type Patch struct {
	Payment *enums.PaymentMethod
	Email   *string
	Phone   *string
	Address *string
}

// StepResult reports a gate decision for one checkout step.
type StepResult struct {
	Valid bool
	Error string
}

// State exclusively owns the session's order draft.
type State struct {
	bus   events.Publisher
	draft Draft
}

// NewState builds an empty draft bound to the given publisher.
func NewState(bus events.Publisher) *State {
	return &State{bus: bus}
}

// Update shallow-merges the patch into the draft. It emits nothing: field
// edits decide for themselves whether a re-render is warranted.
func (s *State) Update(patch Patch) {
	if patch.Payment != nil {
		s.draft.Payment = *patch.Payment
	}
	if patch.Email != nil {
		s.draft.Email = *patch.Email
	}
	if patch.Phone != nil {
		s.draft.Phone = *patch.Phone
	}
	if patch.Address != nil {
		s.draft.Address = *patch.Address
	}
}

// AddItem prepends the id to the item list and announces the change. Adding
// an id already present inserts a second occurrence; membership checks must
// use Contains, not the count.
func (s *State) AddItem(id string) {
	s.draft.Items = append([]string{id}, s.draft.Items...)
	s.publish(events.CartChanged{})
}

// RemoveItem removes every occurrence of the id and announces the change.
// Remove means gone, however many times the item was added.
func (s *State) RemoveItem(id string) {
	kept := s.draft.Items[:0]
	for _, item := range s.draft.Items {
		if item != id {
			kept = append(kept, item)
		}
	}
	s.draft.Items = kept
	s.publish(events.CartChanged{})
}

// SetItems replaces the item list without announcing a cart change. Used
// only by the submission flow to store the sanitized id list.
func (s *State) SetItems(ids []string) {
	s.draft.Items = make([]string, len(ids))
	copy(s.draft.Items, ids)
}

// Contains reports cart membership for the id.
func (s *State) Contains(id string) bool {
	for _, item := range s.draft.Items {
		if item == id {
			return true
		}
	}
	return false
}

// ItemIDs returns a copy of the item list, duplicates included.
func (s *State) ItemIDs() []string {
	out := make([]string, len(s.draft.Items))
	copy(out, s.draft.Items)
	return out
}

// ItemCount returns the number of entries, duplicates counted.
func (s *State) ItemCount() int {
	return len(s.draft.Items)
}

func (s *State) Payment() enums.PaymentMethod { return s.draft.Payment }
func (s *State) Address() string              { return s.draft.Address }
func (s *State) Email() string                { return s.draft.Email }
func (s *State) Phone() string                { return s.draft.Phone }

// Snapshot returns a read-only copy of the full draft.
func (s *State) Snapshot() Draft {
	out := s.draft
	out.Items = s.ItemIDs()
	return out
}

// ValidateShippingStep returns the first unmet requirement of the
// payment+address step, or an empty string when the step is valid.
func (s *State) ValidateShippingStep() string {
	if s.draft.Payment == enums.PaymentMethodUnset {
		return MsgChoosePayment
	}
	if s.draft.Address == "" {
		return MsgEnterAddress
	}
	return ""
}

// ValidateContactStep returns the first unmet requirement of the contact
// step, or an empty string when the step is valid.
func (s *State) ValidateContactStep() string {
	if s.draft.Email == "" {
		return MsgEnterEmail
	}
	if s.draft.Phone == "" {
		return MsgEnterPhone
	}
	return ""
}

// Validate composes the step checks for the given wizard step. Steps with
// no gate of their own are always valid.
func (s *State) Validate(step enums.CheckoutStep) StepResult {
	var msg string
	switch step {
	case enums.StepShipping:
		msg = s.ValidateShippingStep()
	case enums.StepContacts:
		msg = s.ValidateContactStep()
	}
	return StepResult{Valid: msg == "", Error: msg}
}

// Clear resets every field to its empty value. Idempotent. It emits nothing;
// the submission flow re-renders explicitly.
func (s *State) Clear() {
	s.draft = Draft{}
}

func (s *State) publish(evt events.Event) {
	if s.bus != nil {
		s.bus.Emit(evt)
	}
}
