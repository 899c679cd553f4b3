package view

// Node is the root handle of a rendered surface: a minimal display tree the
// orchestrator composes without knowing how a host turns it into pixels.
type Node struct {
	kind     string
	text     string
	attrs    map[string]string
	children []*Node
}

// NewNode builds an empty node of the given kind.
func NewNode(kind string) *Node {
	return &Node{kind: kind}
}

// Kind returns the node's kind label.
func (n *Node) Kind() string {
	return n.kind
}

// SetText replaces the node's text content.
func (n *Node) SetText(value string) {
	n.text = value
}

// Text returns the node's text content.
func (n *Node) Text() string {
	return n.text
}

// SetAttr assigns a single named attribute.
func (n *Node) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// Attr returns a named attribute, or the empty string.
func (n *Node) Attr(key string) string {
	return n.attrs[key]
}

// ReplaceChildren swaps the node's children wholesale.
func (n *Node) ReplaceChildren(children ...*Node) {
	n.children = append(n.children[:0:0], children...)
}

// Children returns the node's children in order.
func (n *Node) Children() []*Node {
	return n.children
}
