package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tiendapos/inventory-service/internal/model"
	"github.com/tiendapos/inventory-service/internal/sales"
	"github.com/tiendapos/inventory-service/internal/stock"
	"github.com/tiendapos/inventory-service/pkg/logger"
)

type salesUseCase struct {
	repo      sales.Repository
	stockRepo stock.Repository
	logger    logger.Logger
}

// NewSalesUseCase builds the sales usecase. The stock repository is only
// used to resolve product ids.
func NewSalesUseCase(repo sales.Repository, stockRepo stock.Repository, log logger.Logger) sales.UseCase {
	return &salesUseCase{
		repo:      repo,
		stockRepo: stockRepo,
		logger:    log,
	}
}

func (uc *salesUseCase) RecordSale(ctx context.Context, productName string, quantity int64) (*model.Sale, error) {
	if productName == "" {
		return nil, errors.New("product name is required")
	}
	if quantity < 1 {
		return nil, errors.New("quantity must be at least 1")
	}

	product, err := uc.stockRepo.FindByName(ctx, productName)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	sale := &model.Sale{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
	}
	id, err := uc.repo.Insert(ctx, sale)
	if err != nil {
		return nil, err
	}
	sale.ID = id

	uc.logger.Info("sale recorded",
		zap.Int64("sale_id", sale.ID),
		zap.String("product", sale.ProductName),
		zap.Int64("quantity", sale.Quantity))
	return sale, nil
}

func (uc *salesUseCase) ListAll(ctx context.Context) ([]model.Sale, error) {
	return uc.repo.FindAll(ctx)
}
