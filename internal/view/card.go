package view

import "github.com/larekshop/storefront/pkg/events"

// Card is one product tile on the catalog grid.
type Card struct {
	cfg      Config
	bus      events.Publisher
	root     *Node
	category *Node
	title    *Node
	image    *Node
	price    *Node
	id       string
}

// CardPatch is the card's partial attribute set.
type CardPatch struct {
	ID       *string
	Category *string
	Title    *string
	Image    *string
	Price    *Price
}

// NewCard builds a catalog card surface.
func NewCard(cfg Config, bus events.Publisher) *Card {
	root := NewNode("card")
	category := NewNode("card-category")
	title := NewNode("card-title")
	image := NewNode("card-image")
	price := NewNode("card-price")
	root.ReplaceChildren(category, title, image, price)
	return &Card{cfg: cfg, bus: bus, root: root, category: category, title: title, image: image, price: price}
}

// Apply assigns the fields present in the patch and returns the root.
func (c *Card) Apply(patch CardPatch) *Node {
	if patch.ID != nil {
		c.id = *patch.ID
		c.root.SetAttr("id", *patch.ID)
	}
	if patch.Category != nil {
		c.category.SetText(*patch.Category)
	}
	if patch.Title != nil {
		c.title.SetText(*patch.Title)
	}
	if patch.Image != nil {
		c.image.SetAttr("src", c.cfg.ImageURL(*patch.Image))
	}
	if patch.Price != nil {
		c.price.SetText(c.cfg.FormatPrice(*patch.Price))
	}
	return c.root
}

// Root returns the card's root handle.
func (c *Card) Root() *Node {
	return c.root
}

// Click simulates opening the card's product detail.
func (c *Card) Click() {
	if c.bus != nil {
		c.bus.Emit(events.CardSelected{ProductID: c.id})
	}
}

// Preview is the product detail surface shown inside the modal: a card plus
// the description and the add/remove toggle button.
type Preview struct {
	card        Card
	description *Node
	button      *Node
}

// PreviewPatch is the preview's partial attribute set.
type PreviewPatch struct {
	ID          *string
	Category    *string
	Title       *string
	Image       *string
	Description *string
	Price       *Price
	ButtonLabel *string
}

// NewPreview builds a product detail surface.
func NewPreview(cfg Config, bus events.Publisher) *Preview {
	card := NewCard(cfg, bus)
	description := NewNode("card-text")
	button := NewNode("card-button")
	card.root.ReplaceChildren(card.category, card.title, card.image, card.price, description, button)
	return &Preview{card: *card, description: description, button: button}
}

// Apply assigns the fields present in the patch and returns the root.
func (p *Preview) Apply(patch PreviewPatch) *Node {
	p.card.Apply(CardPatch{
		ID:       patch.ID,
		Category: patch.Category,
		Title:    patch.Title,
		Image:    patch.Image,
		Price:    patch.Price,
	})
	if patch.Description != nil {
		p.description.SetText(*patch.Description)
	}
	if patch.ButtonLabel != nil {
		p.button.SetText(*patch.ButtonLabel)
	}
	return p.card.root
}

// Root returns the preview's root handle.
func (p *Preview) Root() *Node {
	return p.card.root
}

// ButtonLabel exposes the rendered toggle button text.
func (p *Preview) ButtonLabel() string {
	return p.button.Text()
}

// ToggleCart simulates pressing the add/remove button.
func (p *Preview) ToggleCart() {
	if p.card.bus != nil {
		p.card.bus.Emit(events.CartToggled{ProductID: p.card.id})
	}
}
