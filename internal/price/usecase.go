package price

import (
	"context"

	"github.com/tiendapos/inventory-service/internal/model"
	"github.com/tiendapos/inventory-service/internal/price/dto"
)

type UseCase interface {
	Lookup(ctx context.Context, productName string) (*model.Price, error)
	ListAll(ctx context.Context) ([]model.Price, error)
	CreatePrice(ctx context.Context, input *dto.PriceInput) (*model.Price, error)
	UpdatePrice(ctx context.Context, input *dto.PriceInput) (*model.Price, error)
}
