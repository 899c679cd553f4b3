package view

import "github.com/larekshop/storefront/pkg/events"

// Modal hosts whichever checkout surface is active. Dismissal by any route
// (escape, backdrop, close button) announces itself so the page counter can
// recompute.
type Modal struct {
	bus     events.Publisher
	root    *Node
	content *Node
	open    bool
}

// ModalPatch is the modal's partial attribute set.
type ModalPatch struct {
	Content *Node
}

// NewModal builds the modal surface.
func NewModal(bus events.Publisher) *Modal {
	root := NewNode("modal")
	content := NewNode("modal-content")
	root.ReplaceChildren(content)
	return &Modal{bus: bus, root: root, content: content}
}

// Apply assigns the fields present in the patch and returns the root.
func (m *Modal) Apply(patch ModalPatch) *Node {
	if patch.Content != nil {
		m.content.ReplaceChildren(patch.Content)
	}
	return m.root
}

// Root returns the modal's root handle.
func (m *Modal) Root() *Node {
	return m.root
}

// Content returns the hosted surface root, or nil while empty.
func (m *Modal) Content() *Node {
	children := m.content.Children()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// Open shows the modal.
func (m *Modal) Open() {
	m.open = true
}

// IsOpen reports the modal's visibility.
func (m *Modal) IsOpen() bool {
	return m.open
}

// Dismiss hides the modal, clears its content and announces the dismissal.
func (m *Modal) Dismiss() {
	m.open = false
	m.content.ReplaceChildren()
	if m.bus != nil {
		m.bus.Emit(events.ModalDismissed{})
	}
}

// Success is the order confirmation surface.
type Success struct {
	cfg   Config
	bus   events.Publisher
	root  *Node
	total *Node
}

// SuccessPatch is the confirmation's partial attribute set.
type SuccessPatch struct {
	Total *int64
}

// NewSuccess builds the confirmation surface.
func NewSuccess(cfg Config, bus events.Publisher) *Success {
	root := NewNode("order-success")
	total := NewNode("order-success-total")
	root.ReplaceChildren(total)
	return &Success{cfg: cfg, bus: bus, root: root, total: total}
}

// Apply assigns the fields present in the patch and returns the root.
func (s *Success) Apply(patch SuccessPatch) *Node {
	if patch.Total != nil {
		s.total.SetText(s.cfg.FormatPrice(Price{Amount: *patch.Total}))
	}
	return s.root
}

// Root returns the confirmation's root handle.
func (s *Success) Root() *Node {
	return s.root
}

// Total exposes the rendered total text.
func (s *Success) Total() string {
	return s.total.Text()
}

// Close simulates pressing "continue shopping".
func (s *Success) Close() {
	if s.bus != nil {
		s.bus.Emit(events.OrderCompleted{})
	}
}
