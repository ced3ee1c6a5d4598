// Package cart holds the client-local shopping cart. Contents live in a
// durable local store and are never synchronized with any server.
package cart

import "fmt"

// Item is one cart line. Quantity is always positive; a line driven to zero
// is removed rather than retained.
type Item struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

type Cart struct {
	items []Item
	store Store
}

// New loads any previously persisted contents from the store.
func New(store Store) (*Cart, error) {
	items, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return &Cart{items: items, store: store}, nil
}

// Add puts one unit of the product in the cart. Adding a product already
// present merges into the existing line instead of creating a second one.
func (c *Cart) Add(p Product) error {
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			return c.persist()
		}
	}
	c.items = append(c.items, Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
	return c.persist()
}

// UpdateQuantity adjusts a line by delta, clamping at zero. A line whose
// quantity reaches zero is removed from the cart.
func (c *Cart) UpdateQuantity(productID string, delta int) error {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ProductID == productID {
			item.Quantity += delta
			if item.Quantity < 0 {
				item.Quantity = 0
			}
		}
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	c.items = kept
	return c.persist()
}

// Remove deletes a line regardless of quantity.
func (c *Cart) Remove(productID string) error {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	return c.persist()
}

// Items returns a copy of the current cart lines.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// TotalPrice is recomputed from the current lines, never stored.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	var total int
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) persist() error {
	if err := c.store.Save(c.items); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
