package sales

import (
	"context"

	"github.com/tiendapos/inventory-service/internal/model"
)

type Repository interface {
	// Insert appends a sale record and returns the assigned id. Rows are
	// never updated or deleted afterwards.
	Insert(ctx context.Context, s *model.Sale) (int64, error)

	// FindAll lists every sale ordered by id ascending.
	FindAll(ctx context.Context) ([]model.Sale, error)
}
