package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tiendapos/inventory-service/internal/model"
	"github.com/tiendapos/inventory-service/internal/price"
	"github.com/tiendapos/inventory-service/internal/price/dto"
	"github.com/tiendapos/inventory-service/internal/stock"
	"github.com/tiendapos/inventory-service/pkg/logger"
)

type priceUseCase struct {
	repo      price.Repository
	stockRepo stock.Repository
	logger    logger.Logger
}

// NewPriceUseCase builds the price usecase. The stock repository is only
// used to validate product existence; prices never touch quantities.
func NewPriceUseCase(repo price.Repository, stockRepo stock.Repository, log logger.Logger) price.UseCase {
	return &priceUseCase{
		repo:      repo,
		stockRepo: stockRepo,
		logger:    log,
	}
}

func (uc *priceUseCase) Lookup(ctx context.Context, productName string) (*model.Price, error) {
	p, err := uc.repo.FindByProduct(ctx, productName)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.ErrPriceNotFound
	}
	return p, nil
}

func (uc *priceUseCase) ListAll(ctx context.Context) ([]model.Price, error) {
	return uc.repo.FindAll(ctx)
}

// CreatePrice is the new-price path. The existence check runs before any
// mutation; when a row is already present the whole operation aborts and
// the current prices travel back inside the error.
func (uc *priceUseCase) CreatePrice(ctx context.Context, input *dto.PriceInput) (*model.Price, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	product, err := uc.stockRepo.FindByName(ctx, input.ProductName)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	existing, err := uc.repo.FindByProduct(ctx, input.ProductName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &model.PriceExistsError{Current: *existing}
	}

	p := &model.Price{
		ProductID:     product.ID,
		ProductName:   product.Name,
		PurchasePrice: input.PurchasePrice,
		SalePrice:     input.SalePrice,
	}
	id, err := uc.repo.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id

	uc.logger.Info("price created",
		zap.String("product", p.ProductName),
		zap.String("purchase_price", p.PurchasePrice.StringFixed(2)),
		zap.String("sale_price", p.SalePrice.StringFixed(2)))
	return p, nil
}

// UpdatePrice is the modify-price path: it requires an existing row and
// replaces both fields unconditionally.
func (uc *priceUseCase) UpdatePrice(ctx context.Context, input *dto.PriceInput) (*model.Price, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByProduct(ctx, input.ProductName)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, model.ErrPriceNotFound
	}

	updated := &model.Price{
		ID:            existing.ID,
		ProductID:     existing.ProductID,
		ProductName:   existing.ProductName,
		PurchasePrice: input.PurchasePrice,
		SalePrice:     input.SalePrice,
	}
	affected, err := uc.repo.Update(ctx, updated)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, model.ErrPriceNotFound
	}

	uc.logger.Info("price updated",
		zap.String("product", updated.ProductName),
		zap.String("purchase_price", updated.PurchasePrice.StringFixed(2)),
		zap.String("sale_price", updated.SalePrice.StringFixed(2)))
	return updated, nil
}

func validate(input *dto.PriceInput) error {
	if input.ProductName == "" {
		return errors.New("product name is required")
	}
	if input.PurchasePrice.IsNegative() {
		return errors.New("purchase price cannot be negative")
	}
	if input.SalePrice.IsNegative() {
		return errors.New("sale price cannot be negative")
	}
	return nil
}
