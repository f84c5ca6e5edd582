package model

import "github.com/shopspring/decimal"

// Price is the single active price row of a product. ProductName is a
// denormalized copy of the stock row's name.
type Price struct {
	ID            int64           `db:"id"`
	ProductID     int64           `db:"product_id"`
	ProductName   string          `db:"product_name"`
	PurchasePrice decimal.Decimal `db:"purchase_price"`
	SalePrice     decimal.Decimal `db:"sale_price"`
}
