package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceagents/internal/catalog"
)

func derivedTotal(c *Cart) int {
	total := 0
	for _, item := range c.Items() {
		total += item.Quantity * item.UnitPrice
	}
	return total
}

func TestAddAndTotalScenario(t *testing.T) {
	c := New(catalog.Default())

	require.True(t, c.Add("mug-001", 2))
	require.True(t, c.Add("mug-002", 1))
	assert.Equal(t, 2250, c.Total())

	c.Remove("mug-001")
	assert.Equal(t, 650, c.Total())
}

func TestItemsReturnsCopy(t *testing.T) {
	c := New(catalog.Default())
	require.True(t, c.Add("mug-001", 1))

	items := c.Items()
	items[0].Quantity = 99
	items[0].TotalPrice = 99 * 800

	assert.Equal(t, 1, c.Items()[0].Quantity, "mutating the returned slice must not touch the cart")
	assert.Equal(t, 800, c.Total())
}

func TestTotalInvariantAfterEveryMutation(t *testing.T) {
	c := New(catalog.Default())

	steps := []func(){
		func() { c.Add("mug-001", 2) },
		func() { c.Add("mug-001", 3) }, // increments existing line
		func() { c.Add("hoodie-001", 1) },
		func() { c.UpdateQuantity("mug-001", 1) },
		func() { c.Remove("hoodie-001") },
		func() { c.UpdateQuantity("mug-001", 0) }, // removes the line
		func() { c.Remove("not-in-cart") },
	}

	for i, step := range steps {
		step()
		assert.Equal(t, derivedTotal(c), c.Total(), "total stale after step %d", i)
	}
	assert.True(t, c.Empty())
}

func TestAddUnknownItem(t *testing.T) {
	c := New(catalog.Default())

	assert.False(t, c.Add("mug-999", 1))
	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Total())
}

func TestAddQuantityBelowOneDefaultsToOne(t *testing.T) {
	c := New(catalog.Default())

	require.True(t, c.Add("mug-001", 0))
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.Items()[0].Quantity)
	assert.Equal(t, 800, c.Total())
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	c := New(catalog.Default())
	require.True(t, c.Add("mug-002", 1))

	c.Remove("mug-001")

	require.Len(t, c.Items(), 1)
	assert.Equal(t, 650, c.Total())
}

func TestUpdateQuantity(t *testing.T) {
	c := New(catalog.Default())
	require.True(t, c.Add("mug-001", 1))

	assert.True(t, c.UpdateQuantity("mug-001", 4))
	assert.Equal(t, 3200, c.Total())

	assert.False(t, c.UpdateQuantity("mug-002", 2), "item not in cart")

	assert.True(t, c.UpdateQuantity("mug-001", -1), "non-positive quantity removes")
	assert.True(t, c.Empty())
}

func TestRenderEmptyCart(t *testing.T) {
	c := New(catalog.Default())
	assert.Equal(t, emptyMessage, c.Render())
}

func TestRenderListsItemsAndTotal(t *testing.T) {
	c := New(catalog.Default())
	require.True(t, c.Add("mug-001", 2))

	out := c.Render()
	assert.Contains(t, out, "2x Stoneware Coffee Mug")
	assert.Contains(t, out, "Total: ₹1600")
}

func TestCheckoutPersistsOnceAndClears(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	book := NewOrderBook(path)

	c := New(catalog.Default())
	require.True(t, c.Add("mug-001", 2))
	require.True(t, c.Add("mug-002", 1))

	order, err := c.Checkout(book)
	require.NoError(t, err)
	assert.Len(t, order.ID, 8)
	assert.Equal(t, 2250, order.Total)
	assert.Equal(t, "CONFIRMED", order.Status)
	assert.False(t, order.CreatedAt.IsZero())

	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Total())

	// exactly one persisted order with the pre-checkout contents
	reloaded := NewOrderBook(path)
	require.Len(t, reloaded.All(), 1)
	assert.Equal(t, order.ID, reloaded.All()[0].ID)

	_, err = c.Checkout(book)
	assert.Error(t, err, "second checkout has nothing to persist")
	require.Len(t, NewOrderBook(path).All(), 1)
}

func TestOrderBookLast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	book := NewOrderBook(path)

	_, ok := book.Last()
	assert.False(t, ok)

	c := New(catalog.Default())
	require.True(t, c.Add("hoodie-001", 1))
	first, err := c.Checkout(book)
	require.NoError(t, err)

	require.True(t, c.Add("mug-002", 1))
	second, err := c.Checkout(book)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	last, ok := book.Last()
	require.True(t, ok)
	assert.Equal(t, second.ID, last.ID)
}

func TestOrderBookCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{"), 0644))

	book := NewOrderBook(path)
	assert.Empty(t, book.All())

	c := New(catalog.Default())
	require.True(t, c.Add("mug-001", 1))
	_, err := c.Checkout(book)
	require.NoError(t, err)

	assert.Len(t, NewOrderBook(path).All(), 1, "corrupt history rewritten as a valid one-entry array")
}
