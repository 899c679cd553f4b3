// Package session wires the storefront together: it owns the event bus
// subscriptions, the catalog and order state, and every render surface, and
// serializes all mutation through a single dispatch loop.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/larekshop/storefront/internal/catalog"
	"github.com/larekshop/storefront/internal/order"
	"github.com/larekshop/storefront/internal/shopapi"
	"github.com/larekshop/storefront/internal/view"
	"github.com/larekshop/storefront/pkg/enums"
	"github.com/larekshop/storefront/pkg/events"
	"github.com/larekshop/storefront/pkg/logger"
)

// Backend is the slice of the shop API the session needs.
type Backend interface {
	Products(ctx context.Context) ([]catalog.Product, error)
	PlaceOrder(ctx context.Context, req shopapi.OrderRequest) (shopapi.OrderResult, error)
}

// Params carries the session's dependencies.
type Params struct {
	Log  *logger.Logger
	Bus  *events.Bus
	Shop Backend
	View view.Config
}

// Session is the storefront orchestrator. All state it owns is touched only
// from the dispatch loop; external callers reach it through Do.
type Session struct {
	log  *logger.Logger
	bus  *events.Bus
	shop Backend
	cfg  view.Config

	catalog *catalog.State
	order   *order.State

	page     *view.Page
	modal    *view.Modal
	preview  *view.Preview
	basket   *view.Basket
	shipping *view.ShippingForm
	contacts *view.ContactForm
	success  *view.Success

	step     enums.CheckoutStep
	selected string

	tasks    chan func()
	done     chan struct{}
	inflight sync.WaitGroup
	once     sync.Once
}

// NewSession builds the orchestrator and registers its bus handlers.
func NewSession(p Params) (*Session, error) {
	if p.Log == nil {
		return nil, errors.New("logger is required")
	}
	if p.Bus == nil {
		return nil, errors.New("event bus is required")
	}
	if p.Shop == nil {
		return nil, errors.New("shop backend is required")
	}

	s := &Session{
		log:      p.Log,
		bus:      p.Bus,
		shop:     p.Shop,
		cfg:      p.View,
		catalog:  catalog.NewState(p.Bus),
		order:    order.NewState(p.Bus),
		page:     view.NewPage(p.Bus),
		modal:    view.NewModal(p.Bus),
		preview:  view.NewPreview(p.View, p.Bus),
		basket:   view.NewBasket(p.View, p.Bus),
		shipping: view.NewShippingForm(p.Bus),
		contacts: view.NewContactForm(p.Bus),
		success:  view.NewSuccess(p.View, p.Bus),
		step:     enums.StepCatalog,
		tasks:    make(chan func()),
		done:     make(chan struct{}),
	}

	s.bus.On(events.KindCatalogLoaded, func(events.Event) { s.onCatalogChanged() })
	s.bus.On(events.KindProductAdded, func(events.Event) { s.onCatalogChanged() })
	s.bus.On(events.KindCardSelected, func(evt events.Event) {
		s.onCardSelected(evt.(events.CardSelected).ProductID)
	})
	s.bus.On(events.KindCartToggled, func(evt events.Event) {
		s.onCartToggled(evt.(events.CartToggled).ProductID)
	})
	s.bus.On(events.KindCartChanged, func(events.Event) { s.onCartChanged() })
	s.bus.On(events.KindBasketOpened, func(events.Event) { s.onBasketOpened() })
	s.bus.On(events.KindBasketLineRemoved, func(evt events.Event) {
		s.order.RemoveItem(evt.(events.BasketLineRemoved).ProductID)
	})
	s.bus.On(events.KindOrderStarted, func(events.Event) { s.onOrderStarted() })
	s.bus.On(events.KindPaymentChosen, func(evt events.Event) {
		method := evt.(events.PaymentChosen).Method
		s.order.Update(order.Patch{Payment: &method})
		s.renderShipping()
	})
	s.bus.On(events.KindAddressChanged, func(evt events.Event) {
		value := evt.(events.AddressChanged).Value
		s.order.Update(order.Patch{Address: &value})
		s.renderShipping()
	})
	s.bus.On(events.KindShippingSubmitted, func(events.Event) { s.onShippingSubmitted() })
	s.bus.On(events.KindEmailChanged, func(evt events.Event) {
		value := evt.(events.EmailChanged).Value
		s.order.Update(order.Patch{Email: &value})
		s.renderContacts()
	})
	s.bus.On(events.KindPhoneChanged, func(evt events.Event) {
		value := evt.(events.PhoneChanged).Value
		s.order.Update(order.Patch{Phone: &value})
		s.renderContacts()
	})
	s.bus.On(events.KindContactsSubmitted, func(events.Event) { s.onContactsSubmitted() })
	s.bus.On(events.KindOrderCompleted, func(events.Event) { s.modal.Dismiss() })
	s.bus.On(events.KindModalDismissed, func(events.Event) { s.onModalDismissed() })

	return s, nil
}

// Start launches the dispatch loop and kicks off the initial catalog fetch.
// The loop exits when the context is canceled.
func (s *Session) Start(ctx context.Context) {
	s.once.Do(func() {
		go s.run(ctx)
		s.fetchCatalog(ctx)
	})
}

func (s *Session) run(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			return
		case task := <-s.tasks:
			task()
		}
	}
}

// Do runs fn on the dispatch loop. Every interaction with the session's
// surfaces and state goes through here so no lock is ever needed.
func (s *Session) Do(fn func()) {
	select {
	case s.tasks <- fn:
	case <-s.done:
	}
}

// Sync blocks until every task queued before it has run.
func (s *Session) Sync() {
	ran := make(chan struct{})
	s.Do(func() { close(ran) })
	select {
	case <-ran:
	case <-s.done:
	}
}

// Flush waits for in-flight network calls to post their completions, then
// drains the queue. Meant for tests and graceful shutdown.
//
// The queue must drain before the wait: a task queued via Do only registers
// its network call on the in-flight group once it runs on the loop, so
// waiting first would see an empty group and return early. Completions never
// start new network calls, so one more drain after the wait lands them all.
func (s *Session) Flush() {
	s.Sync()
	s.inflight.Wait()
	s.Sync()
}

// fetchCatalog loads the product list off-loop and posts the result back.
func (s *Session) fetchCatalog(ctx context.Context) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		items, err := s.shop.Products(ctx)
		s.Do(func() {
			if err != nil {
				s.log.Error(ctx, "loading catalog", err)
				return
			}
			s.catalog.SetAll(items)
		})
	}()
}

// Accessors for drivers and tests. Read them only from the dispatch loop or
// after Sync/Flush returned.

func (s *Session) Step() enums.CheckoutStep     { return s.step }
func (s *Session) Catalog() *catalog.State      { return s.catalog }
func (s *Session) Order() *order.State          { return s.order }
func (s *Session) Page() *view.Page             { return s.page }
func (s *Session) Modal() *view.Modal           { return s.modal }
func (s *Session) Preview() *view.Preview       { return s.preview }
func (s *Session) Basket() *view.Basket         { return s.basket }
func (s *Session) Shipping() *view.ShippingForm { return s.shipping }
func (s *Session) Contacts() *view.ContactForm  { return s.contacts }
func (s *Session) Success() *view.Success       { return s.success }
