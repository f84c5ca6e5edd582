package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one pending line of a sale. UnitPrice is snapshotted from
// the price store when the line is added, so later price changes do not
// affect an open cart. Cancelled lines stay visible until commit but
// produce no stock effect and no sale record.
type CartItem struct {
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	Cancelled   bool
}

// Cart holds the pending sale lines of a single session. It is an
// explicit value owned by the front-end and passed into the checkout
// workflow; it must never be shared across sessions.
type Cart struct {
	ID    uuid.UUID
	Items []CartItem
}

func NewCart() *Cart {
	return &Cart{ID: uuid.New()}
}

// AddItem appends a line with its subtotal computed from the snapshotted
// unit price.
func (c *Cart) AddItem(productName string, quantity int64, unitPrice decimal.Decimal) CartItem {
	item := CartItem{
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    unitPrice.Mul(decimal.NewFromInt(quantity)),
	}
	c.Items = append(c.Items, item)
	return item
}

// Cancel marks the line at idx as cancelled. Out-of-range indexes are
// ignored.
func (c *Cart) Cancel(idx int) {
	if idx < 0 || idx >= len(c.Items) {
		return
	}
	c.Items[idx].Cancelled = true
}

// Total sums the subtotals of the lines that will actually commit.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		if item.Cancelled {
			continue
		}
		total = total.Add(item.Subtotal)
	}
	return total
}

// Clear resets the cart to empty. Checkout calls this after every commit
// regardless of per-line outcomes.
func (c *Cart) Clear() {
	c.Items = nil
}
