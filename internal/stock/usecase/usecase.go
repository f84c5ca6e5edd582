package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/tiendapos/inventory-service/internal/model"
	"github.com/tiendapos/inventory-service/internal/stock"
	"github.com/tiendapos/inventory-service/internal/stock/dto"
	"github.com/tiendapos/inventory-service/pkg/cache"
	"github.com/tiendapos/inventory-service/pkg/logger"
)

const (
	listCacheKey = "stock:list"
	listCacheTTL = 30 * time.Second
)

type stockUseCase struct {
	repo   stock.Repository
	cache  *cache.RedisClient
	logger logger.Logger
}

// NewStockUseCase builds the stock usecase. cache may be nil; listings
// then always hit the database.
func NewStockUseCase(repo stock.Repository, cache *cache.RedisClient, log logger.Logger) stock.UseCase {
	return &stockUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *stockUseCase) CreateProduct(ctx context.Context, name string, quantity int64) (*model.Product, error) {
	if name == "" {
		return nil, errors.New("product name is required")
	}
	if quantity < 0 {
		return nil, errors.New("initial quantity cannot be negative")
	}

	product, err := uc.repo.Insert(ctx, name, quantity)
	if err != nil {
		return nil, err
	}

	uc.invalidateListCache(ctx)
	uc.logger.Info("product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Int64("quantity", product.Quantity))
	return product, nil
}

func (uc *stockUseCase) IncreaseQuantity(ctx context.Context, name string, delta int64) (int64, error) {
	if delta < 0 {
		return 0, errors.New("delta cannot be negative")
	}

	newQuantity, err := uc.repo.AddQuantity(ctx, name, delta)
	if err != nil {
		return 0, err
	}

	uc.invalidateListCache(ctx)
	return newQuantity, nil
}

func (uc *stockUseCase) DecreaseQuantity(ctx context.Context, name string, delta int64) (int64, error) {
	if delta < 0 {
		return 0, errors.New("delta cannot be negative")
	}

	newQuantity, err := uc.repo.SubtractQuantity(ctx, name, delta)
	if err != nil {
		return newQuantity, err
	}

	uc.invalidateListCache(ctx)
	return newQuantity, nil
}

func (uc *stockUseCase) Lookup(ctx context.Context, name string) (*model.Product, error) {
	product, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

func (uc *stockUseCase) ListAll(ctx context.Context) ([]model.Product, error) {
	if uc.cache != nil {
		var cached []model.Product
		hit, err := uc.cache.GetJSON(ctx, listCacheKey, &cached)
		if err != nil {
			uc.logger.Warn("stock list cache read failed", zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, listCacheKey, products, listCacheTTL); err != nil {
			uc.logger.Warn("stock list cache write failed", zap.Error(err))
		}
	}
	return products, nil
}

// ReceiveMerchandise runs one of the two receiving sub-paths. The declared
// mode is honored as-is: the new-product path fails loudly on an existing
// name instead of falling back to an increase.
func (uc *stockUseCase) ReceiveMerchandise(ctx context.Context, input *dto.ReceiveInput) (*dto.ReceiveResult, error) {
	if input.Name == "" {
		return nil, errors.New("product name is required")
	}
	if input.Quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}

	switch input.Mode {
	case dto.ModeNewProduct:
		product, err := uc.CreateProduct(ctx, input.Name, input.Quantity)
		if err != nil {
			return nil, err
		}
		return &dto.ReceiveResult{
			ProductID:   product.ID,
			ProductName: product.Name,
			NewQuantity: product.Quantity,
			Created:     true,
		}, nil

	case dto.ModeExistingProduct:
		newQuantity, err := uc.IncreaseQuantity(ctx, input.Name, input.Quantity)
		if err != nil {
			return nil, err
		}
		product, err := uc.Lookup(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		return &dto.ReceiveResult{
			ProductID:   product.ID,
			ProductName: product.Name,
			NewQuantity: newQuantity,
		}, nil

	default:
		return nil, errors.New("unknown receive mode")
	}
}

func (uc *stockUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, listCacheKey); err != nil {
		uc.logger.Warn("stock list cache invalidation failed", zap.Error(err))
	}
}
