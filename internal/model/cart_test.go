package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCart(t *testing.T) {
	cart := NewCart()
	assert.NotEqual(t, uuid.Nil, cart.ID)
	assert.Empty(t, cart.Items)
}

func TestCart_AddItem(t *testing.T) {
	cart := NewCart()
	item := cart.AddItem("rice 1kg", 3, decimal.RequireFromString("4.35"))

	assert.Equal(t, "rice 1kg", item.ProductName)
	assert.Equal(t, int64(3), item.Quantity)
	assert.True(t, item.Subtotal.Equal(decimal.RequireFromString("13.05")),
		"subtotal %s", item.Subtotal)
	assert.False(t, item.Cancelled)
	require.Len(t, cart.Items, 1)
}

func TestCart_Cancel(t *testing.T) {
	cart := NewCart()
	cart.AddItem("rice 1kg", 1, decimal.NewFromInt(4))
	cart.AddItem("beans 500g", 2, decimal.NewFromInt(3))

	cart.Cancel(1)
	assert.False(t, cart.Items[0].Cancelled)
	assert.True(t, cart.Items[1].Cancelled)

	// Out-of-range indexes are ignored
	cart.Cancel(-1)
	cart.Cancel(5)
	assert.Len(t, cart.Items, 2)
}

func TestCart_Total(t *testing.T) {
	t.Run("empty cart totals zero", func(t *testing.T) {
		assert.True(t, NewCart().Total().IsZero())
	})

	t.Run("cancelled lines are excluded", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem("rice 1kg", 2, decimal.RequireFromString("4.50"))
		cart.AddItem("beans 500g", 1, decimal.RequireFromString("3.20"))
		cart.AddItem("oil 900ml", 1, decimal.RequireFromString("8.90"))
		cart.Cancel(1)

		assert.True(t, cart.Total().Equal(decimal.RequireFromString("17.90")),
			"total %s", cart.Total())
	})
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.AddItem("rice 1kg", 1, decimal.NewFromInt(4))
	id := cart.ID

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.Equal(t, id, cart.ID, "clearing keeps the session identity")
	assert.True(t, cart.Total().IsZero())
}
