package price

import (
	"context"

	"github.com/tiendapos/inventory-service/internal/model"
)

type Repository interface {
	// FindByProduct returns (nil, nil) when no row matches.
	FindByProduct(ctx context.Context, productName string) (*model.Price, error)

	// FindAll lists every price row ordered by id ascending.
	FindAll(ctx context.Context) ([]model.Price, error)

	// Insert creates a price row and returns the assigned id.
	Insert(ctx context.Context, p *model.Price) (int64, error)

	// Update overwrites both price fields of the row matching
	// p.ProductName and reports how many rows were affected.
	Update(ctx context.Context, p *model.Price) (int64, error)
}
