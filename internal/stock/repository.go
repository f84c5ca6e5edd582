package stock

import (
	"context"

	"github.com/tiendapos/inventory-service/internal/model"
)

type Repository interface {
	// Insert creates a product row and returns it with the assigned id.
	// Returns model.ErrDuplicateProduct when the name is already taken.
	Insert(ctx context.Context, name string, quantity int64) (*model.Product, error)

	// FindByName returns (nil, nil) when no row matches.
	FindByName(ctx context.Context, name string) (*model.Product, error)

	// FindAll lists every product ordered by id ascending.
	FindAll(ctx context.Context) ([]model.Product, error)

	// AddQuantity atomically adds delta and returns the new quantity.
	// Returns model.ErrProductNotFound when the product is absent.
	AddQuantity(ctx context.Context, name string, delta int64) (int64, error)

	// SubtractQuantity atomically subtracts delta and returns the new
	// quantity. The row is left untouched on failure: the update only
	// applies when the current quantity covers delta. Returns
	// model.ErrProductNotFound, or model.ErrInsufficientStock together
	// with the unchanged on-hand quantity.
	SubtractQuantity(ctx context.Context, name string, delta int64) (int64, error)
}
