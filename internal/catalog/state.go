// Package catalog holds the product collection for one storefront session.
package catalog

import "github.com/larekshop/storefront/pkg/events"

// Product is a single purchasable (or priceless) catalog entry. Immutable
// once loaded; a nil Price marks an item that cannot be bought.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Price       *int64 `json:"price"`
}

// Purchasable reports whether the product carries a price.
func (p Product) Purchasable() bool {
	return p.Price != nil
}

// State owns the ordered product collection. The collection is replaced
// wholesale by SetAll; the only incremental change is a single-item prepend.
// Ids are expected to be unique: on violation the later entry wins lookups,
// which is documented rather than fixed here.
type State struct {
	bus   events.Publisher
	items []Product
	index map[string]int
}

// NewState builds an empty catalog bound to the given publisher.
func NewState(bus events.Publisher) *State {
	return &State{
		bus:   bus,
		index: make(map[string]int),
	}
}

// SetAll replaces the held collection and announces the load.
func (s *State) SetAll(items []Product) {
	s.items = make([]Product, len(items))
	copy(s.items, items)
	s.reindex()
	s.publish(events.CatalogLoaded{})
}

// Prepend inserts a single product at the front of the collection.
func (s *State) Prepend(item Product) {
	s.items = append([]Product{item}, s.items...)
	s.reindex()
	s.publish(events.ProductAdded{ProductID: item.ID})
}

// Get returns the product for the id, or false when absent.
func (s *State) Get(id string) (Product, bool) {
	i, ok := s.index[id]
	if !ok {
		return Product{}, false
	}
	return s.items[i], true
}

// GetMany maps ids to products, preserving input order and duplicates. A nil
// entry marks an id that did not resolve.
func (s *State) GetMany(ids []string) []*Product {
	out := make([]*Product, len(ids))
	for i, id := range ids {
		if item, ok := s.Get(id); ok {
			copied := item
			out[i] = &copied
		}
	}
	return out
}

// PurchasableIDs filters ids down to those resolving to a priced product.
// Unresolved and priceless ids are dropped silently; this is the sanitizer
// run over a cart before submission.
func (s *State) PurchasableIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if item, ok := s.Get(id); ok && item.Purchasable() {
			out = append(out, id)
		}
	}
	return out
}

// Total sums the price over ids that resolve to a priced product.
// Unresolved and priceless ids contribute zero.
func (s *State) Total(ids []string) int64 {
	var total int64
	for _, id := range ids {
		if item, ok := s.Get(id); ok && item.Purchasable() {
			total += *item.Price
		}
	}
	return total
}

// All returns a copy of the held collection in order.
func (s *State) All() []Product {
	out := make([]Product, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of held products.
func (s *State) Len() int {
	return len(s.items)
}

func (s *State) reindex() {
	s.index = make(map[string]int, len(s.items))
	for i, item := range s.items {
		s.index[item.ID] = i
	}
}

func (s *State) publish(evt events.Event) {
	if s.bus != nil {
		s.bus.Emit(evt)
	}
}
