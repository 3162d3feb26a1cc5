package cart

import (
	"fmt"
	"strings"

	"voiceagents/internal/catalog"
	"voiceagents/internal/model"
)

const emptyMessage = "Your cart is empty. Would you like to browse the catalog?"

// Cart holds the line items for one session. A cart is owned by a single
// conversation session and must not be shared.
type Cart struct {
	catalog *catalog.Store
	items   []model.LineItem
	total   int
}

// New creates an empty cart backed by the given catalog.
func New(cat *catalog.Store) *Cart {
	return &Cart{catalog: cat}
}

// Add puts quantity units of the item into the cart, incrementing the existing
// line when the item is already present. Quantities below 1 default to 1.
// Returns false when the id is unknown to the catalog; the caller turns that
// into a clarification prompt.
func (c *Cart) Add(itemID string, quantity int) bool {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.items {
		if c.items[i].ProductID == itemID {
			c.items[i].Quantity += quantity
			c.items[i].TotalPrice = c.items[i].Quantity * c.items[i].UnitPrice
			c.recomputeTotal()
			return true
		}
	}

	product, ok := c.catalog.GetByID(itemID)
	if !ok {
		return false
	}

	c.items = append(c.items, model.LineItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   product.Price,
		TotalPrice:  quantity * product.Price,
		Currency:    product.Currency,
	})
	c.recomputeTotal()
	return true
}

// Remove drops the matching line item. Removing an absent item is a no-op.
func (c *Cart) Remove(itemID string) {
	for i := range c.items {
		if c.items[i].ProductID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.recomputeTotal()
}

// UpdateQuantity sets the quantity for an item already in the cart. A quantity
// of zero or less removes the line. Returns false when the item is not in the
// cart.
func (c *Cart) UpdateQuantity(itemID string, quantity int) bool {
	for i := range c.items {
		if c.items[i].ProductID != itemID {
			continue
		}
		if quantity <= 0 {
			c.Remove(itemID)
			return true
		}
		c.items[i].Quantity = quantity
		c.items[i].TotalPrice = quantity * c.items[i].UnitPrice
		c.recomputeTotal()
		return true
	}
	return false
}

// Items returns a copy of the current line items in insertion order, so
// callers cannot mutate cart lines behind the derived total.
func (c *Cart) Items() []model.LineItem {
	items := make([]model.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Total returns the current cart total.
func (c *Cart) Total() int {
	return c.total
}

// Empty reports whether the cart has no items.
func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Render produces the human-readable cart listing spoken back to the user.
func (c *Cart) Render() string {
	if len(c.items) == 0 {
		return emptyMessage
	}

	var b strings.Builder
	b.WriteString("Here's what's in your cart:\n")
	for _, item := range c.items {
		b.WriteString(fmt.Sprintf("%dx %s - ₹%d\n", item.Quantity, item.ProductName, item.TotalPrice))
	}
	b.WriteString(fmt.Sprintf("\nTotal: ₹%d", c.total))
	return b.String()
}

// Checkout snapshots the cart into a confirmed order, persists it through the
// order book, and clears the cart. The cart is cleared even when persistence
// fails so the same items cannot be written twice; the error tells the caller
// the order was not durably saved.
func (c *Cart) Checkout(book *OrderBook) (model.Order, error) {
	if len(c.items) == 0 {
		return model.Order{}, fmt.Errorf("cannot check out an empty cart")
	}

	items := make([]model.LineItem, len(c.items))
	copy(items, c.items)

	c.items = nil
	c.recomputeTotal()

	return book.Create(items)
}

// recomputeTotal re-derives the total from the line items. Called as the final
// step of every mutation so no stale total is ever observable.
func (c *Cart) recomputeTotal() {
	total := 0
	for _, item := range c.items {
		total += item.Quantity * item.UnitPrice
	}
	c.total = total
}
