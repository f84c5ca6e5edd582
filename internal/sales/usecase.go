package sales

import (
	"context"

	"github.com/tiendapos/inventory-service/internal/model"
)

type UseCase interface {
	// RecordSale resolves the product id by name and appends a sale
	// record. It never checks or mutates stock quantity; that is the
	// checkout workflow's responsibility.
	RecordSale(ctx context.Context, productName string, quantity int64) (*model.Sale, error)

	ListAll(ctx context.Context) ([]model.Sale, error)
}
