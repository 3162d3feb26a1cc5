package agent

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"voiceagents/internal/cart"
	"voiceagents/internal/catalog"
	"voiceagents/internal/logger"
	"voiceagents/internal/model"
	"voiceagents/internal/resolve"
	"voiceagents/internal/session"
)

const commerceGreeting = "Welcome to our online store! I'm here to help you find and order products. " +
	"What are you looking for today? I can show you mugs, clothing, or help you search for something specific."

var knownColors = []string{"black", "blue", "white", "gray"}

// CommerceConfig wires a shopping session's collaborators.
type CommerceConfig struct {
	Catalog     *catalog.Store
	Orders      *cart.OrderBook
	Publisher   Publisher
	Transcripts session.Store
	SessionID   string
	MaxShown    int
}

// Commerce is the voice shopping assistant for one session. It keeps the cart
// and the recently shown product list across turns.
type Commerce struct {
	catalog   *catalog.Store
	resolver  *resolve.Resolver
	cart      *cart.Cart
	orders    *cart.OrderBook
	pub       Publisher
	store     session.Store
	sessionID string
	maxShown  int

	started   bool
	lastShown []model.CatalogItem
}

// NewCommerce creates a shopping session over a shared catalog and order book.
func NewCommerce(cfg CommerceConfig) *Commerce {
	if cfg.MaxShown <= 0 {
		cfg.MaxShown = 5
	}
	return &Commerce{
		catalog:   cfg.Catalog,
		resolver:  resolve.New(cfg.Catalog),
		cart:      cart.New(cfg.Catalog),
		orders:    cfg.Orders,
		pub:       cfg.Publisher,
		store:     cfg.Transcripts,
		sessionID: cfg.SessionID,
		maxShown:  cfg.MaxShown,
	}
}

// Cart exposes the session cart to the function-calling layer.
func (a *Commerce) Cart() *cart.Cart {
	return a.cart
}

// BrowseCatalog lists products matching the filters and remembers them as the
// reference set for "the second one" style follow-ups.
func (a *Commerce) BrowseCatalog(ctx context.Context, filters catalog.Filters) string {
	products := a.catalog.List(filters)
	a.lastShown = products

	if len(products) == 0 {
		return "I couldn't find any products matching your criteria. Try a different search or ask to see all products."
	}

	shown := products
	if len(shown) > a.maxShown {
		shown = shown[:a.maxShown]
	}

	var lines []string
	for i, product := range shown {
		lines = append(lines, fmt.Sprintf("%d. %s - ₹%d (%s %s)",
			i+1, product.Name, product.Price, product.Color, product.Size))
	}

	return "Here are the products I found:\n" + strings.Join(lines, "\n") +
		"\n\nWould you like more details about any of these, or shall I help you place an order?"
}

// AddToCart resolves a spoken product reference and adds it to the cart.
func (a *Commerce) AddToCart(ctx context.Context, reference string, quantity int) string {
	product, ok := a.resolver.Resolve(reference, a.lastShown)
	if !ok {
		return clarify(reference)
	}

	if !a.cart.Add(product.ID, quantity) {
		return clarify(reference)
	}

	publish(ctx, a.pub, Event{Type: "cart_updated", Payload: a.cartPayload()})
	return fmt.Sprintf("Added %s to your cart. %s", product.Name, a.cart.Render())
}

// RemoveFromCart resolves a reference and drops the matching cart line.
func (a *Commerce) RemoveFromCart(ctx context.Context, reference string) string {
	product, ok := a.resolver.Resolve(reference, a.lastShown)
	if !ok {
		return clarify(reference)
	}

	a.cart.Remove(product.ID)
	publish(ctx, a.pub, Event{Type: "cart_updated", Payload: a.cartPayload()})
	return a.cart.Render()
}

// ShowCart renders the current cart.
func (a *Commerce) ShowCart() string {
	return a.cart.Render()
}

// Checkout confirms the cart as an order.
func (a *Commerce) Checkout(ctx context.Context) string {
	if a.cart.Empty() {
		return a.cart.Render()
	}

	order, err := a.cart.Checkout(a.orders)
	publish(ctx, a.pub, Event{Type: "order_placed", Payload: order})

	if err != nil {
		logger.Error().Err(err).Msg("checkout persistence failed")
		return fmt.Sprintf("Your order %s is confirmed, but I couldn't save the receipt - please note your order ID.", order.ID)
	}

	return fmt.Sprintf("Order placed successfully! Order ID: %s\n\nTotal: ₹%d\n\nYour order is confirmed and will be processed shortly.",
		order.ID, order.Total)
}

// PlaceOrder is the one-shot voice flow: resolve the reference and confirm an
// order for it immediately, without a multi-item cart round.
func (a *Commerce) PlaceOrder(ctx context.Context, reference string, quantity int) string {
	product, ok := a.resolver.Resolve(reference, a.lastShown)
	if !ok {
		return clarify(reference)
	}
	if quantity < 1 {
		quantity = 1
	}

	order, err := a.orders.Create([]model.LineItem{{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   product.Price,
		TotalPrice:  quantity * product.Price,
		Currency:    product.Currency,
	}})
	publish(ctx, a.pub, Event{Type: "order_placed", Payload: order})

	if err != nil {
		return fmt.Sprintf("Your order %s is confirmed, but I couldn't save the receipt - please note your order ID.", order.ID)
	}

	return fmt.Sprintf("Order placed successfully! Order ID: %s\n\nYou ordered:\n%dx %s - ₹%d\n\nTotal: ₹%d\n\nYour order is confirmed and will be processed shortly.",
		order.ID, quantity, product.Name, quantity*product.Price, order.Total)
}

// OrderStatus describes the most recent order.
func (a *Commerce) OrderStatus() string {
	order, ok := a.orders.Last()
	if !ok {
		return "You haven't placed any orders yet. Would you like to browse our catalog?"
	}

	var lines []string
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("%dx %s - ₹%d", item.Quantity, item.ProductName, item.TotalPrice))
	}

	return fmt.Sprintf("Your last order (ID: %s):\n%s\n\nTotal: ₹%d\nStatus: %s\nPlaced: %s",
		order.ID, strings.Join(lines, "\n"), order.Total, order.Status,
		order.CreatedAt.Format("2006-01-02 15:04:05"))
}

// HandleTurn routes one raw utterance by keyword and returns the reply. The
// first turn always greets, regardless of content.
func (a *Commerce) HandleTurn(ctx context.Context, text string) string {
	reply := a.route(ctx, text)
	recordTurn(ctx, a.store, a.sessionID, text, reply)
	return reply
}

func (a *Commerce) route(ctx context.Context, text string) string {
	if !a.started {
		a.started = true
		return commerceGreeting
	}

	lower := strings.ToLower(text)

	if hasAny(lower, "show", "browse", "see", "looking for") {
		switch {
		case strings.Contains(lower, "mug"):
			return a.BrowseCatalog(ctx, catalog.Filters{Category: "mug"})
		case hasAny(lower, "clothing", "shirt", "hoodie"):
			return a.BrowseCatalog(ctx, catalog.Filters{Category: "clothing"})
		case strings.Contains(lower, "under") && digits(text) > 0:
			return a.BrowseCatalog(ctx, catalog.Filters{MaxPrice: digits(text)})
		case firstColor(lower) != "":
			return a.BrowseCatalog(ctx, catalog.Filters{Color: firstColor(lower)})
		}
		return a.BrowseCatalog(ctx, catalog.Filters{})
	}

	if hasAny(lower, "checkout", "check out") {
		return a.Checkout(ctx)
	}
	if strings.Contains(lower, "cart") {
		return a.ShowCart()
	}

	if hasAny(lower, "buy", "order", "purchase", "want", "take") {
		if hasAny(lower, "first", "second", "third") || firstColor(lower) != "" {
			return a.PlaceOrder(ctx, text, 1)
		}
	}

	if hasAny(lower, "bought", "ordered", "last order", "recent") {
		return a.OrderStatus()
	}

	return "I can help you browse products, place orders, or check your order status. " +
		"What would you like to do? Try saying 'show me mugs' or 'I want to buy something'."
}

func (a *Commerce) cartPayload() map[string]any {
	return map[string]any{
		"items": a.cart.Items(),
		"total": a.cart.Total(),
	}
}

func clarify(reference string) string {
	return fmt.Sprintf("I couldn't find the product '%s'. Could you be more specific or browse the catalog again?", reference)
}

func hasAny(text string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

func firstColor(text string) string {
	for _, color := range knownColors {
		if strings.Contains(text, color) {
			return color
		}
	}
	return ""
}

// digits concatenates every digit in the text, so "under 1,500" reads as 1500.
// Non-numeric input reads as zero, never an error.
func digits(text string) int {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}
