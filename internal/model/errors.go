package model

import (
	"errors"
	"fmt"
)

// Ledger errors as sentinel values. All are user-facing and recoverable.
var (
	ErrProductNotFound    = errors.New("product not found in stock")
	ErrDuplicateProduct   = errors.New("product already exists in stock")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrPriceAlreadyExists = errors.New("price already exists for product")
	ErrPriceNotFound      = errors.New("no price registered for product")
)

// PriceExistsError is returned by the new-price path when a row already
// exists. It carries the prices currently in force so the caller can show
// them before pointing the user at the modify-price path.
type PriceExistsError struct {
	Current Price
}

func (e *PriceExistsError) Error() string {
	return fmt.Sprintf("price already exists for %s (purchase %s, sale %s)",
		e.Current.ProductName,
		e.Current.PurchasePrice.StringFixed(2),
		e.Current.SalePrice.StringFixed(2))
}

func (e *PriceExistsError) Unwrap() error {
	return ErrPriceAlreadyExists
}
