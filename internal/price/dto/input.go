package dto

import "github.com/shopspring/decimal"

type PriceInput struct {
	ProductName   string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
}
