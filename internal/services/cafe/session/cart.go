package session

import "fmt"

// Cart accumulates item quantities for one session before an order is
// placed. It is private to the session, never persisted and never shared.
type Cart struct {
	items map[int64]int64
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{items: make(map[int64]int64)}
}

// Add increments the stored quantity for an item. Quantities must be
// positive; a rejected call leaves the cart untouched.
func (c *Cart) Add(id, quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	c.items[id] += quantity
	return nil
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear discards all cart contents.
func (c *Cart) Clear() {
	c.items = make(map[int64]int64)
}

// Snapshot returns an independent copy of the cart contents. Later cart
// mutations do not affect a previously taken snapshot.
func (c *Cart) Snapshot() map[int64]int64 {
	snapshot := make(map[int64]int64, len(c.items))
	for id, quantity := range c.items {
		snapshot[id] = quantity
	}
	return snapshot
}
