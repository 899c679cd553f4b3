package view

import (
	"testing"

	"github.com/larekshop/storefront/internal/catalog"
	"github.com/larekshop/storefront/pkg/enums"
	"github.com/larekshop/storefront/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = Config{CDNBaseURL: "https://cdn.example.com/content/", CurrencyLabel: "synapses"}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "100 synapses", testCfg.FormatPrice(Price{Amount: 100}))
	assert.Equal(t, "priceless", testCfg.FormatPrice(Price{Priceless: true}))
}

func TestImageURLJoinsCleanly(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/content/a.svg", testCfg.ImageURL("/a.svg"))
	assert.Equal(t, "https://cdn.example.com/content/a.svg", testCfg.ImageURL("a.svg"))
	assert.Equal(t, "", testCfg.ImageURL(""))
}

func TestPagePartialApplyLeavesOtherFields(t *testing.T) {
	page := NewPage(events.NewBus(nil))
	card := NewNode("card")

	page.Apply(PagePatch{Catalog: []*Node{card}})
	require.Len(t, page.Gallery(), 1)

	page.Apply(PagePatch{CartCount: intPtr(3)})
	assert.Equal(t, "3", page.CartCount())
	assert.Len(t, page.Gallery(), 1, "catalog must survive an unrelated patch")

	page.Apply(PagePatch{})
	assert.Equal(t, "3", page.CartCount())
	assert.Len(t, page.Gallery(), 1)
}

func TestPageApplyReturnsRootForComposition(t *testing.T) {
	page := NewPage(events.NewBus(nil))
	assert.Same(t, page.Root(), page.Apply(PagePatch{}))
}

func TestPageClickBasketEmits(t *testing.T) {
	bus := events.NewBus(nil)
	var opened bool
	bus.On(events.KindBasketOpened, func(events.Event) { opened = true })

	NewPage(bus).ClickBasket()
	assert.True(t, opened)
}

func TestCardApplyAndClick(t *testing.T) {
	bus := events.NewBus(nil)
	var selected string
	bus.On(events.KindCardSelected, func(evt events.Event) {
		selected = evt.(events.CardSelected).ProductID
	})

	card := NewCard(testCfg, bus)
	price := int64(100)
	card.Apply(CardPatchFor(catalog.Product{
		ID:       "p-1",
		Title:    "Gel pen",
		Category: "stationery",
		Image:    "/pen.svg",
		Price:    &price,
	}))

	assert.Equal(t, "p-1", card.Root().Attr("id"))
	card.Click()
	assert.Equal(t, "p-1", selected)
}

func TestPreviewButtonLabelSurvivesProductPatch(t *testing.T) {
	preview := NewPreview(testCfg, events.NewBus(nil))
	preview.Apply(PreviewPatch{ButtonLabel: strPtr("remove from basket")})
	preview.Apply(PreviewPatchFor(catalog.Product{ID: "p-1", Title: "Gel pen"}))

	assert.Equal(t, "remove from basket", preview.ButtonLabel())
}

func TestPreviewToggleEmitsCurrentID(t *testing.T) {
	bus := events.NewBus(nil)
	var toggled string
	bus.On(events.KindCartToggled, func(evt events.Event) {
		toggled = evt.(events.CartToggled).ProductID
	})

	preview := NewPreview(testCfg, bus)
	preview.Apply(PreviewPatch{ID: strPtr("p-9")})
	preview.ToggleCart()

	assert.Equal(t, "p-9", toggled)
}

func TestBasketSubmitGate(t *testing.T) {
	bus := events.NewBus(nil)
	var started int
	bus.On(events.KindOrderStarted, func(events.Event) { started++ })

	basket := NewBasket(testCfg, bus)
	assert.False(t, basket.SubmitEnabled(), "starts disabled")
	basket.PlaceOrder()
	assert.Equal(t, 0, started, "disabled control does not fire")

	basket.Apply(BasketPatch{Total: int64Ptr(100), SubmitEnabled: boolPtr(true)})
	basket.PlaceOrder()
	assert.Equal(t, 1, started)
}

func TestBasketPartialApply(t *testing.T) {
	basket := NewBasket(testCfg, events.NewBus(nil))
	line := NewNode("basket-line")

	basket.Apply(BasketPatch{Lines: []*Node{line}, SubmitEnabled: boolPtr(true)})
	basket.Apply(BasketPatch{Total: int64Ptr(250)})

	assert.Len(t, basket.Lines(), 1)
	assert.True(t, basket.SubmitEnabled())
}

func TestBasketLineRemoveEmitsID(t *testing.T) {
	bus := events.NewBus(nil)
	var removed string
	bus.On(events.KindBasketLineRemoved, func(evt events.Event) {
		removed = evt.(events.BasketLineRemoved).ProductID
	})

	line := NewBasketLine(testCfg, bus)
	line.Apply(BasketLinePatch{ID: strPtr("p-2"), Index: intPtr(1), Title: strPtr("Desk plant")})
	line.Remove()

	assert.Equal(t, "p-2", removed)
}

func TestShippingFormInteractionsEmitTypedEvents(t *testing.T) {
	bus := events.NewBus(nil)
	var chosen enums.PaymentMethod
	var typed string
	var submitted bool
	bus.On(events.KindPaymentChosen, func(evt events.Event) {
		chosen = evt.(events.PaymentChosen).Method
	})
	bus.On(events.KindAddressChanged, func(evt events.Event) {
		typed = evt.(events.AddressChanged).Value
	})
	bus.On(events.KindShippingSubmitted, func(events.Event) { submitted = true })

	form := NewShippingForm(bus)
	form.ChoosePayment(enums.PaymentMethodOnline)
	form.TypeAddress("Main St 1")
	form.Submit()

	assert.Equal(t, enums.PaymentMethodOnline, chosen)
	assert.Equal(t, "Main St 1", typed)
	assert.True(t, submitted)
}

func TestShippingFormPartialApply(t *testing.T) {
	form := NewShippingForm(events.NewBus(nil))

	form.Apply(ShippingFormPatch{Error: strPtr("select a payment method"), Valid: boolPtr(false)})
	assert.Equal(t, "select a payment method", form.Error())
	assert.False(t, form.NextEnabled())

	form.Apply(ShippingFormPatch{Address: strPtr("Main St 1")})
	assert.Equal(t, "select a payment method", form.Error(), "error slot untouched by address patch")

	form.Apply(ShippingFormPatch{Error: strPtr(""), Valid: boolPtr(true)})
	assert.Equal(t, "", form.Error())
	assert.True(t, form.NextEnabled())
}

func TestContactFormPartialApply(t *testing.T) {
	bus := events.NewBus(nil)
	var submitted bool
	bus.On(events.KindContactsSubmitted, func(events.Event) { submitted = true })

	form := NewContactForm(bus)
	form.Apply(ContactFormPatch{Email: strPtr("a@b.c")})
	form.Apply(ContactFormPatch{Error: strPtr("enter your phone number"), Valid: boolPtr(false)})

	assert.Equal(t, "enter your phone number", form.Error())
	assert.False(t, form.NextEnabled())

	form.Submit()
	assert.True(t, submitted)
}

func TestModalHostsContentAndAnnouncesDismissal(t *testing.T) {
	bus := events.NewBus(nil)
	var dismissed int
	bus.On(events.KindModalDismissed, func(events.Event) { dismissed++ })

	modal := NewModal(bus)
	basket := NewNode("basket")

	modal.Open()
	modal.Apply(ModalPatch{Content: basket})
	require.True(t, modal.IsOpen())
	assert.Same(t, basket, modal.Content())

	// Patch without content keeps the hosted surface.
	modal.Apply(ModalPatch{})
	assert.Same(t, basket, modal.Content())

	modal.Dismiss()
	assert.False(t, modal.IsOpen())
	assert.Nil(t, modal.Content())
	assert.Equal(t, 1, dismissed)
}

func TestSuccessRendersTotalAndCloses(t *testing.T) {
	bus := events.NewBus(nil)
	var completed bool
	bus.On(events.KindOrderCompleted, func(events.Event) { completed = true })

	success := NewSuccess(testCfg, bus)
	success.Apply(SuccessPatch{Total: int64Ptr(100)})

	assert.Equal(t, "100 synapses", success.Total())
	success.Close()
	assert.True(t, completed)
}
