package order

import (
	"testing"

	"github.com/larekshop/storefront/pkg/enums"
	"github.com/larekshop/storefront/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string {
	return &v
}

func payPtr(v enums.PaymentMethod) *enums.PaymentMethod {
	return &v
}

func TestUpdateMergesScalarFieldsOnly(t *testing.T) {
	state := NewState(events.NewBus(nil))
	state.AddItem("a")

	state.Update(Patch{Payment: payPtr(enums.PaymentMethodOnline)})
	state.Update(Patch{Address: strPtr("Main St 1")})

	assert.Equal(t, enums.PaymentMethodOnline, state.Payment())
	assert.Equal(t, "Main St 1", state.Address())
	assert.Equal(t, "", state.Email())
	assert.Equal(t, []string{"a"}, state.ItemIDs(), "update must not touch items")
}

func TestUpdateNilFieldsUntouched(t *testing.T) {
	state := NewState(events.NewBus(nil))
	state.Update(Patch{Email: strPtr("a@b.c"), Phone: strPtr("+1")})
	state.Update(Patch{})

	assert.Equal(t, "a@b.c", state.Email())
	assert.Equal(t, "+1", state.Phone())
}

func TestAddItemPrependsWithoutDedup(t *testing.T) {
	state := NewState(events.NewBus(nil))
	state.AddItem("x")
	state.AddItem("y")
	state.AddItem("x")

	assert.Equal(t, []string{"x", "y", "x"}, state.ItemIDs())
	assert.Equal(t, 3, state.ItemCount())
	assert.True(t, state.Contains("x"))
}

func TestRemoveItemClearsEveryOccurrence(t *testing.T) {
	state := NewState(events.NewBus(nil))
	state.AddItem("x")
	state.AddItem("x")
	require.Equal(t, 2, state.ItemCount())

	state.RemoveItem("x")

	assert.Equal(t, 0, state.ItemCount())
	assert.False(t, state.Contains("x"))
}

func TestAddRemoveEmitCartChanged(t *testing.T) {
	bus := events.NewBus(nil)
	var changes int
	bus.On(events.KindCartChanged, func(events.Event) { changes++ })

	state := NewState(bus)
	state.AddItem("a")
	state.RemoveItem("a")

	assert.Equal(t, 2, changes)
}

func TestSetItemsReplacesWithoutEmitting(t *testing.T) {
	bus := events.NewBus(nil)
	var changes int
	bus.On(events.KindCartChanged, func(events.Event) { changes++ })

	state := NewState(bus)
	state.AddItem("a")
	state.AddItem("b")
	require.Equal(t, 2, changes)

	state.SetItems([]string{"a"})

	assert.Equal(t, []string{"a"}, state.ItemIDs())
	assert.Equal(t, 2, changes, "SetItems must not announce a cart change")
}

func TestItemIDsReturnsCopy(t *testing.T) {
	state := NewState(events.NewBus(nil))
	state.AddItem("a")

	ids := state.ItemIDs()
	ids[0] = "mutated"

	assert.Equal(t, []string{"a"}, state.ItemIDs())
}

func TestValidateShippingStepPaymentBeforeAddress(t *testing.T) {
	state := NewState(events.NewBus(nil))

	// Payment missing wins regardless of address content.
	assert.Equal(t, MsgChoosePayment, state.ValidateShippingStep())
	state.Update(Patch{Address: strPtr("Main St 1")})
	assert.Equal(t, MsgChoosePayment, state.ValidateShippingStep())

	state.Update(Patch{Payment: payPtr(enums.PaymentMethodOnline), Address: strPtr("")})
	assert.Equal(t, MsgEnterAddress, state.ValidateShippingStep())

	state.Update(Patch{Address: strPtr("Main St 1")})
	assert.Equal(t, "", state.ValidateShippingStep())
}

func TestValidateContactStepEmailBeforePhone(t *testing.T) {
	state := NewState(events.NewBus(nil))

	assert.Equal(t, MsgEnterEmail, state.ValidateContactStep())
	state.Update(Patch{Phone: strPtr("+7 900 000 00 00")})
	assert.Equal(t, MsgEnterEmail, state.ValidateContactStep())

	state.Update(Patch{Email: strPtr("user@example.com"), Phone: strPtr("")})
	assert.Equal(t, MsgEnterPhone, state.ValidateContactStep())

	state.Update(Patch{Phone: strPtr("+7 900 000 00 00")})
	assert.Equal(t, "", state.ValidateContactStep())
}

func TestValidateComposesStepChecks(t *testing.T) {
	state := NewState(events.NewBus(nil))

	got := state.Validate(enums.StepShipping)
	assert.False(t, got.Valid)
	assert.Equal(t, MsgChoosePayment, got.Error)

	state.Update(Patch{Payment: payPtr(enums.PaymentMethodOnDelivery), Address: strPtr("Main St 1")})
	got = state.Validate(enums.StepShipping)
	assert.True(t, got.Valid)
	assert.Equal(t, "", got.Error)

	got = state.Validate(enums.StepContacts)
	assert.False(t, got.Valid)
	assert.Equal(t, MsgEnterEmail, got.Error)

	// Steps without a gate are always valid.
	assert.True(t, state.Validate(enums.StepBasket).Valid)
}

func TestClearResetsAndIsIdempotent(t *testing.T) {
	state := NewState(events.NewBus(nil))
	state.Update(Patch{
		Payment: payPtr(enums.PaymentMethodOnline),
		Email:   strPtr("user@example.com"),
		Phone:   strPtr("+1"),
		Address: strPtr("Main St 1"),
	})
	state.AddItem("a")

	state.Clear()
	first := state.Snapshot()
	state.Clear()
	second := state.Snapshot()

	assert.Equal(t, first, second)
	assert.Equal(t, enums.PaymentMethodUnset, state.Payment())
	assert.Equal(t, 0, state.ItemCount())
	assert.Equal(t, "", state.Address())
}

func TestSnapshotIsDetachedCopy(t *testing.T) {
	state := NewState(events.NewBus(nil))
	state.AddItem("a")

	snap := state.Snapshot()
	snap.Items[0] = "mutated"

	assert.Equal(t, []string{"a"}, state.ItemIDs())
}

func TestValidationNeverPanicsOnEmptyDraft(t *testing.T) {
	state := NewState(nil)
	assert.NotPanics(t, func() {
		state.ValidateShippingStep()
		state.ValidateContactStep()
		state.Validate(enums.StepConfirmation)
		state.RemoveItem("ghost")
	})
}
