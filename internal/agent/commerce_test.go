package agent

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceagents/internal/cart"
	"voiceagents/internal/catalog"
	"voiceagents/internal/model"
	"voiceagents/internal/session"
)

func newCommerce(t *testing.T) (*Commerce, *ChannelPublisher) {
	t.Helper()
	book := cart.NewOrderBook(filepath.Join(t.TempDir(), "orders.json"))
	pub := NewChannelPublisher(16)
	return NewCommerce(CommerceConfig{
		Catalog:   catalog.Default(),
		Orders:    book,
		Publisher: pub,
	}), pub
}

func TestCommerceGreetsOnFirstTurn(t *testing.T) {
	agent, _ := newCommerce(t)

	reply := agent.HandleTurn(context.Background(), "show me mugs")
	assert.Equal(t, commerceGreeting, reply)
}

func TestCommerceBrowseRouting(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		text string
		want []string
		not  []string
	}{
		{"by category mug", "show me some mugs", []string{"Stoneware Coffee Mug", "Blue Ceramic Mug"}, []string{"Hoodie"}},
		{"by category clothing", "I'm looking for a hoodie", []string{"Hoodie", "T-Shirt"}, []string{"Mug"}},
		{"by max price", "show me things under 1000", []string{"Stoneware Coffee Mug", "Blue Ceramic Mug"}, []string{"Hoodie"}},
		{"by color", "can I see something blue", []string{"Blue Ceramic Mug"}, []string{"White"}},
		{"no filter", "show me everything", []string{"Mug", "Hoodie", "T-Shirt"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			agent, _ := newCommerce(t)
			agent.HandleTurn(ctx, "hi")

			reply := agent.HandleTurn(ctx, tc.text)
			for _, want := range tc.want {
				assert.Contains(t, reply, want)
			}
			for _, not := range tc.not {
				assert.NotContains(t, reply, not)
			}
		})
	}
}

func TestCommerceBrowseCapsDisplayedResults(t *testing.T) {
	items := make([]model.CatalogItem, 7)
	for i := range items {
		items[i] = model.CatalogItem{
			ID: string(rune('a' + i)), Name: "Item", Price: 100,
			Currency: "INR", Category: "misc",
		}
	}
	agent := NewCommerce(CommerceConfig{
		Catalog:   catalog.NewStore(items),
		Orders:    cart.NewOrderBook(filepath.Join(t.TempDir(), "orders.json")),
		Publisher: NopPublisher{},
		MaxShown:  5,
	})

	reply := agent.BrowseCatalog(context.Background(), catalog.Filters{})
	assert.Contains(t, reply, "5. Item")
	assert.NotContains(t, reply, "6. Item")

	// all seven stay resolvable even though only five were spoken
	assert.Len(t, agent.lastShown, 7)
}

func TestCommerceAddToCartByOrdinal(t *testing.T) {
	ctx := context.Background()
	agent, pub := newCommerce(t)
	agent.HandleTurn(ctx, "hi")
	agent.HandleTurn(ctx, "show me mugs")

	reply := agent.AddToCart(ctx, "the second one", 2)
	assert.Contains(t, reply, "Added Blue Ceramic Mug")
	assert.Contains(t, reply, "Total: ₹1300")

	event := <-pub.C
	assert.Equal(t, "cart_updated", event.Type)
}

func TestCommerceAddToCartUnresolvedAsksToClarify(t *testing.T) {
	ctx := context.Background()
	agent, pub := newCommerce(t)
	agent.HandleTurn(ctx, "hi")

	reply := agent.AddToCart(ctx, "the purple one", 1)
	assert.Contains(t, reply, "couldn't find")
	assert.Empty(t, pub.C, "no event for a failed add")
}

func TestCommerceCheckoutFlow(t *testing.T) {
	ctx := context.Background()
	agent, pub := newCommerce(t)
	agent.HandleTurn(ctx, "hi")
	agent.HandleTurn(ctx, "show me mugs")
	agent.AddToCart(ctx, "first", 1)
	<-pub.C

	reply := agent.HandleTurn(ctx, "let's checkout")
	assert.Contains(t, reply, "Order placed successfully")
	assert.Contains(t, reply, "Total: ₹800")

	event := <-pub.C
	assert.Equal(t, "order_placed", event.Type)

	assert.True(t, agent.Cart().Empty())

	status := agent.HandleTurn(ctx, "what did I order recently?")
	assert.Contains(t, status, "1x Stoneware Coffee Mug")
	assert.Contains(t, status, "CONFIRMED")
}

func TestCommerceCheckoutEmptyCart(t *testing.T) {
	ctx := context.Background()
	agent, pub := newCommerce(t)
	agent.HandleTurn(ctx, "hi")

	reply := agent.HandleTurn(ctx, "checkout please")
	assert.Contains(t, reply, "Your cart is empty")
	assert.Empty(t, pub.C)
}

func TestCommercePlaceOrderOneShot(t *testing.T) {
	ctx := context.Background()
	agent, pub := newCommerce(t)
	agent.HandleTurn(ctx, "hi")
	agent.HandleTurn(ctx, "show me mugs")

	reply := agent.HandleTurn(ctx, "I want to buy the second one")
	assert.Contains(t, reply, "Order placed successfully")
	assert.Contains(t, reply, "1x Blue Ceramic Mug - ₹650")

	event := <-pub.C
	assert.Equal(t, "order_placed", event.Type)
	order, ok := event.Payload.(model.Order)
	require.True(t, ok)
	assert.Len(t, order.ID, 8)
	assert.Equal(t, 650, order.Total)
}

func TestCommerceOrderStatusWithoutOrders(t *testing.T) {
	ctx := context.Background()
	agent, _ := newCommerce(t)
	agent.HandleTurn(ctx, "hi")

	reply := agent.HandleTurn(ctx, "what did I order recently?")
	assert.Contains(t, reply, "haven't placed any orders yet")
}

func TestCommerceFallbackHelp(t *testing.T) {
	ctx := context.Background()
	agent, _ := newCommerce(t)
	agent.HandleTurn(ctx, "hi")

	reply := agent.HandleTurn(ctx, "what's the weather like?")
	assert.Contains(t, reply, "browse products")
}

func TestCommerceRecordsTranscript(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore(3600)
	agent := NewCommerce(CommerceConfig{
		Catalog:     catalog.Default(),
		Orders:      cart.NewOrderBook(filepath.Join(t.TempDir(), "orders.json")),
		Publisher:   NopPublisher{},
		Transcripts: store,
		SessionID:   "sess1",
	})

	agent.HandleTurn(ctx, "hi")
	agent.HandleTurn(ctx, "show me mugs")

	transcript, err := store.Get(ctx, "sess1")
	require.NoError(t, err)
	require.Len(t, transcript.Messages, 4)
	assert.Equal(t, "user", transcript.Messages[0].Role)
	assert.Equal(t, "assistant", transcript.Messages[1].Role)
	assert.True(t, strings.HasPrefix(transcript.Messages[3].Content, "Here are the products"))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, 1500, digits("under 1,500 rupees"))
	assert.Equal(t, 0, digits("no numbers here"))
}
