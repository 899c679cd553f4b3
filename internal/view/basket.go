package view

import (
	"strconv"

	"github.com/larekshop/storefront/pkg/events"
)

// Basket is the cart surface: line items, the running total and the
// "place order" button, enabled only while the total is positive.
type Basket struct {
	cfg    Config
	bus    events.Publisher
	root   *Node
	list   *Node
	total  *Node
	submit *Node
}

// BasketPatch is the basket's partial attribute set.
type BasketPatch struct {
	Lines         []*Node
	Total         *int64
	SubmitEnabled *bool
}

// NewBasket builds the basket surface.
func NewBasket(cfg Config, bus events.Publisher) *Basket {
	root := NewNode("basket")
	list := NewNode("basket-list")
	total := NewNode("basket-total")
	submit := NewNode("basket-submit")
	submit.SetAttr("disabled", "true")
	root.ReplaceChildren(list, total, submit)
	return &Basket{cfg: cfg, bus: bus, root: root, list: list, total: total, submit: submit}
}

// Apply assigns the fields present in the patch and returns the root.
func (b *Basket) Apply(patch BasketPatch) *Node {
	if patch.Lines != nil {
		b.list.ReplaceChildren(patch.Lines...)
	}
	if patch.Total != nil {
		b.total.SetText(b.cfg.FormatPrice(Price{Amount: *patch.Total}))
	}
	if patch.SubmitEnabled != nil {
		b.submit.SetAttr("disabled", strconv.FormatBool(!*patch.SubmitEnabled))
	}
	return b.root
}

// Root returns the basket's root handle.
func (b *Basket) Root() *Node {
	return b.root
}

// SubmitEnabled reports whether the "place order" control is live.
func (b *Basket) SubmitEnabled() bool {
	return b.submit.Attr("disabled") == "false"
}

// Lines exposes the rendered line items.
func (b *Basket) Lines() []*Node {
	return b.list.Children()
}

// PlaceOrder simulates pressing "place order". A disabled control does not
// fire, matching how a disabled button behaves.
func (b *Basket) PlaceOrder() {
	if !b.SubmitEnabled() {
		return
	}
	if b.bus != nil {
		b.bus.Emit(events.OrderStarted{})
	}
}

// BasketLine is a single row inside the basket.
type BasketLine struct {
	cfg   Config
	bus   events.Publisher
	root  *Node
	index *Node
	title *Node
	price *Node
	id    string
}

// BasketLinePatch is the line's partial attribute set.
type BasketLinePatch struct {
	ID    *string
	Index *int
	Title *string
	Price *Price
}

// NewBasketLine builds one basket row surface.
func NewBasketLine(cfg Config, bus events.Publisher) *BasketLine {
	root := NewNode("basket-line")
	index := NewNode("basket-line-index")
	title := NewNode("basket-line-title")
	price := NewNode("basket-line-price")
	root.ReplaceChildren(index, title, price)
	return &BasketLine{cfg: cfg, bus: bus, root: root, index: index, title: title, price: price}
}

// Apply assigns the fields present in the patch and returns the root.
func (l *BasketLine) Apply(patch BasketLinePatch) *Node {
	if patch.ID != nil {
		l.id = *patch.ID
		l.root.SetAttr("id", *patch.ID)
	}
	if patch.Index != nil {
		l.index.SetText(strconv.Itoa(*patch.Index))
	}
	if patch.Title != nil {
		l.title.SetText(*patch.Title)
	}
	if patch.Price != nil {
		l.price.SetText(l.cfg.FormatPrice(*patch.Price))
	}
	return l.root
}

// Root returns the line's root handle.
func (l *BasketLine) Root() *Node {
	return l.root
}

// Remove simulates pressing the line's delete control.
func (l *BasketLine) Remove() {
	if l.bus != nil {
		l.bus.Emit(events.BasketLineRemoved{ProductID: l.id})
	}
}
