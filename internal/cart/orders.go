package cart

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"voiceagents/internal/journal"
	"voiceagents/internal/logger"
	"voiceagents/internal/model"
)

// OrderBook keeps the order history for the shop, backed by a JSON journal
// file. Existing orders are loaded at startup; a corrupt file starts empty.
type OrderBook struct {
	log    *journal.Log[model.Order]
	orders []model.Order
}

// NewOrderBook opens the order history at the given path.
func NewOrderBook(path string) *OrderBook {
	log := journal.New[model.Order](path)
	return &OrderBook{
		log:    log,
		orders: log.Load(),
	}
}

// Create confirms a new order over the given line items and persists the full
// history. The order is kept in memory even when the write fails, so the
// conversation can keep answering status questions; the error reports that
// durability was not achieved.
func (b *OrderBook) Create(items []model.LineItem) (model.Order, error) {
	total := 0
	for _, item := range items {
		total += item.Quantity * item.UnitPrice
	}

	order := model.Order{
		ID:        uuid.NewString()[:8],
		Items:     items,
		Total:     total,
		Currency:  "INR",
		Status:    "CONFIRMED",
		CreatedAt: time.Now(),
	}

	b.orders = append(b.orders, order)

	if err := b.log.Write(b.orders); err != nil {
		logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to persist order")
		return order, fmt.Errorf("order %s confirmed but not saved: %w", order.ID, err)
	}

	logger.Info().Str("order_id", order.ID).Int("total", order.Total).Msg("order saved")
	return order, nil
}

// Last returns the most recent order. Not-found is a normal outcome.
func (b *OrderBook) Last() (model.Order, bool) {
	if len(b.orders) == 0 {
		return model.Order{}, false
	}
	return b.orders[len(b.orders)-1], true
}

// All returns every order in creation order.
func (b *OrderBook) All() []model.Order {
	return b.orders
}
