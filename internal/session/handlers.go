package session

import (
	"context"

	"github.com/larekshop/storefront/internal/shopapi"
	"github.com/larekshop/storefront/internal/view"
	"github.com/larekshop/storefront/pkg/enums"
	pkgerrors "github.com/larekshop/storefront/pkg/errors"
)

// Labels for the preview's toggle button.
const (
	labelAddToCart      = "add to cart"
	labelRemoveFromCart = "remove from cart"
	labelUnavailable    = "unavailable"
)

// onCatalogChanged re-renders the product grid from the catalog state.
func (s *Session) onCatalogChanged() {
	products := s.catalog.All()
	cards := make([]*view.Node, 0, len(products))
	for _, product := range products {
		card := view.NewCard(s.cfg, s.bus)
		cards = append(cards, card.Apply(view.CardPatchFor(product)))
	}
	count := s.order.ItemCount()
	s.page.Apply(view.PagePatch{Catalog: cards, CartCount: &count})
}

// onCardSelected opens the product detail inside the modal. Unknown ids are
// ignored; the grid may be mid-refresh when a click lands.
func (s *Session) onCardSelected(id string) {
	if _, ok := s.catalog.Get(id); !ok {
		return
	}
	s.selected = id
	s.step = enums.StepProductDetail
	s.renderPreview()
	s.modal.Apply(view.ModalPatch{Content: s.preview.Root()})
	s.modal.Open()
}

// renderPreview refreshes the detail surface for the selected product,
// including the membership-aware toggle label.
func (s *Session) renderPreview() {
	product, ok := s.catalog.Get(s.selected)
	if !ok {
		return
	}
	patch := view.PreviewPatchFor(product)
	label := labelAddToCart
	switch {
	case s.order.Contains(product.ID):
		label = labelRemoveFromCart
	case !product.Purchasable():
		label = labelUnavailable
	}
	patch.ButtonLabel = &label
	s.preview.Apply(patch)
}

// onCartToggled flips the product's cart membership. A product already in
// the cart is removed in full; a priceless product is never added.
func (s *Session) onCartToggled(id string) {
	product, ok := s.catalog.Get(id)
	if !ok {
		return
	}
	if s.order.Contains(id) {
		s.order.RemoveItem(id)
	} else if product.Purchasable() {
		s.order.AddItem(id)
	}
	if s.selected == id {
		s.renderPreview()
	}
}

// onCartChanged keeps the header counter current and, when the basket is the
// active surface, re-renders it.
func (s *Session) onCartChanged() {
	count := s.order.ItemCount()
	s.page.Apply(view.PagePatch{CartCount: &count})
	if s.step == enums.StepBasket {
		s.renderBasket()
	}
}

func (s *Session) onBasketOpened() {
	s.step = enums.StepBasket
	s.renderBasket()
	s.modal.Apply(view.ModalPatch{Content: s.basket.Root()})
	s.modal.Open()
}

// renderBasket rebuilds the line items and the gate on "place order": the
// button is live only while the payable total is positive, so a cart holding
// nothing but priceless items cannot start a checkout.
func (s *Session) renderBasket() {
	ids := s.order.ItemIDs()
	lines := make([]*view.Node, 0, len(ids))
	for i, product := range s.catalog.GetMany(ids) {
		if product == nil {
			continue
		}
		line := view.NewBasketLine(s.cfg, s.bus)
		index := i + 1
		price := view.PriceOf(product.Price)
		lines = append(lines, line.Apply(view.BasketLinePatch{
			ID:    &product.ID,
			Index: &index,
			Title: &product.Title,
			Price: &price,
		}))
	}
	total := s.catalog.Total(ids)
	enabled := total > 0
	s.basket.Apply(view.BasketPatch{Lines: lines, Total: &total, SubmitEnabled: &enabled})
}

func (s *Session) onOrderStarted() {
	s.step = enums.StepShipping
	s.renderShipping()
	s.modal.Apply(view.ModalPatch{Content: s.shipping.Root()})
	s.modal.Open()
}

// renderShipping pushes the draft's payment and address into the form along
// with the step's current gate state.
func (s *Session) renderShipping() {
	payment := s.order.Payment()
	address := s.order.Address()
	result := s.order.Validate(enums.StepShipping)
	s.shipping.Apply(view.ShippingFormPatch{
		Payment: &payment,
		Address: &address,
		Error:   &result.Error,
		Valid:   &result.Valid,
	})
}

// onShippingSubmitted advances to the contact step only when the shipping
// step validates; an invalid submit re-renders the error in place.
func (s *Session) onShippingSubmitted() {
	if !s.order.Validate(enums.StepShipping).Valid {
		s.renderShipping()
		return
	}
	s.step = enums.StepContacts
	s.renderContacts()
	s.modal.Apply(view.ModalPatch{Content: s.contacts.Root()})
	s.modal.Open()
}

func (s *Session) renderContacts() {
	email := s.order.Email()
	phone := s.order.Phone()
	result := s.order.Validate(enums.StepContacts)
	s.contacts.Apply(view.ContactFormPatch{
		Email: &email,
		Phone: &phone,
		Error: &result.Error,
		Valid: &result.Valid,
	})
}

// onContactsSubmitted is the submission gate. It sanitizes the cart down to
// purchasable items, stores that list back on the draft, recomputes the total
// from the catalog and sends the order off-loop. The checkout stays on the
// contact step until the backend answers.
func (s *Session) onContactsSubmitted() {
	if !s.order.Validate(enums.StepContacts).Valid {
		s.renderContacts()
		return
	}

	s.order.SetItems(s.catalog.PurchasableIDs(s.order.ItemIDs()))
	draft := s.order.Snapshot()
	req := shopapi.OrderRequest{
		Payment: draft.Payment,
		Email:   draft.Email,
		Phone:   draft.Phone,
		Address: draft.Address,
		Total:   s.catalog.Total(draft.Items),
		Items:   draft.Items,
	}

	ctx := context.Background()
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		result, err := s.shop.PlaceOrder(ctx, req)
		s.Do(func() { s.onOrderResult(ctx, result, err) })
	}()
}

// onOrderResult lands the backend's answer back on the dispatch loop. An
// accepted order always clears the draft, but the confirmation is rendered
// only while the session still sits on the contact step; a stale success
// never hijacks whatever surface the shopper moved on to.
func (s *Session) onOrderResult(ctx context.Context, result shopapi.OrderResult, err error) {
	if err != nil {
		s.log.Error(ctx, "placing order", err)
		if s.step == enums.StepContacts {
			message := pkgerrors.As(err).Message()
			if message == "" {
				message = err.Error()
			}
			valid := false
			s.contacts.Apply(view.ContactFormPatch{Error: &message, Valid: &valid})
		}
		return
	}

	s.order.Clear()
	count := 0
	s.page.Apply(view.PagePatch{CartCount: &count})

	if s.step != enums.StepContacts {
		return
	}
	s.step = enums.StepConfirmation
	s.success.Apply(view.SuccessPatch{Total: &result.Total})
	s.modal.Apply(view.ModalPatch{Content: s.success.Root()})
	s.modal.Open()
}

// onModalDismissed returns the session to the catalog and refreshes the
// counter; dismissal by any route lands here.
func (s *Session) onModalDismissed() {
	s.step = enums.StepCatalog
	count := s.order.ItemCount()
	s.page.Apply(view.PagePatch{CartCount: &count})
}
