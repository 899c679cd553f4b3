package view

import (
	"strconv"

	"github.com/larekshop/storefront/pkg/events"
)

// Page is the main storefront surface: the product grid plus the header
// basket button with its item counter.
type Page struct {
	bus     events.Publisher
	root    *Node
	gallery *Node
	counter *Node
}

// PagePatch is the page's partial attribute set.
type PagePatch struct {
	Catalog   []*Node
	CartCount *int
}

// NewPage builds the page surface.
func NewPage(bus events.Publisher) *Page {
	root := NewNode("page")
	gallery := NewNode("gallery")
	counter := NewNode("basket-counter")
	counter.SetText("0")
	root.ReplaceChildren(gallery, counter)
	return &Page{bus: bus, root: root, gallery: gallery, counter: counter}
}

// Apply assigns the fields present in the patch and returns the root.
func (p *Page) Apply(patch PagePatch) *Node {
	if patch.Catalog != nil {
		p.gallery.ReplaceChildren(patch.Catalog...)
	}
	if patch.CartCount != nil {
		p.counter.SetText(strconv.Itoa(*patch.CartCount))
	}
	return p.root
}

// Root returns the page's root handle.
func (p *Page) Root() *Node {
	return p.root
}

// CartCount exposes the rendered counter text.
func (p *Page) CartCount() string {
	return p.counter.Text()
}

// Gallery exposes the rendered product grid.
func (p *Page) Gallery() []*Node {
	return p.gallery.Children()
}

// ClickBasket simulates pressing the header basket icon.
func (p *Page) ClickBasket() {
	if p.bus != nil {
		p.bus.Emit(events.BasketOpened{})
	}
}
