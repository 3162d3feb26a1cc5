package model

import "time"

// CatalogItem is a single purchasable product. Items are immutable after the
// catalog is loaded and may be shared read-only across sessions.
type CatalogItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Currency    string `json:"currency"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	Size        string `json:"size"`
}

// LineItem is one cart line with a denormalized product name. A line item
// belongs to exactly one cart.
type LineItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int    `json:"unit_price"`
	TotalPrice  int    `json:"total_price"`
	Currency    string `json:"currency"`
}

// Order is a persisted snapshot of a checked-out cart. Never mutated after it
// is written.
type Order struct {
	ID        string     `json:"id"`
	Items     []LineItem `json:"items"`
	Total     int        `json:"total"`
	Currency  string     `json:"currency"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// StampTime fills CreatedAt when the order has not been stamped yet.
func (o *Order) StampTime(t time.Time) {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = t
	}
}
