package stock

import (
	"context"

	"github.com/tiendapos/inventory-service/internal/model"
	"github.com/tiendapos/inventory-service/internal/stock/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, name string, quantity int64) (*model.Product, error)
	IncreaseQuantity(ctx context.Context, name string, delta int64) (int64, error)
	DecreaseQuantity(ctx context.Context, name string, delta int64) (int64, error)
	Lookup(ctx context.Context, name string) (*model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	ReceiveMerchandise(ctx context.Context, input *dto.ReceiveInput) (*dto.ReceiveResult, error)
}
