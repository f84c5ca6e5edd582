package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tiendapos/inventory-service/internal/checkout"
	"github.com/tiendapos/inventory-service/internal/checkout/dto"
	"github.com/tiendapos/inventory-service/internal/model"
	"github.com/tiendapos/inventory-service/internal/sales"
	"github.com/tiendapos/inventory-service/internal/stock"
	"github.com/tiendapos/inventory-service/pkg/logger"
)

type checkoutUseCase struct {
	stockUC stock.UseCase
	salesUC sales.UseCase
	logger  logger.Logger
}

func NewCheckoutUseCase(stockUC stock.UseCase, salesUC sales.UseCase, log logger.Logger) checkout.UseCase {
	return &checkoutUseCase{
		stockUC: stockUC,
		salesUC: salesUC,
		logger:  log,
	}
}

// Commit is a best-effort sequential commit: each line stands alone, a
// rejected line never stops the batch, and committed lines are not rolled
// back when a later line fails.
func (uc *checkoutUseCase) Commit(ctx context.Context, cart *model.Cart) (*dto.CommitResult, error) {
	result := &dto.CommitResult{
		CartID: cart.ID,
		Total:  decimal.Zero,
	}

	for _, item := range cart.Items {
		line := dto.LineResult{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		}

		if item.Cancelled {
			line.Status = dto.LineSkipped
			result.Skipped++
			result.Lines = append(result.Lines, line)
			continue
		}

		onHand, err := uc.stockUC.DecreaseQuantity(ctx, item.ProductName, item.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, model.ErrInsufficientStock):
				line.Status = dto.LineRejected
				line.Reason = fmt.Sprintf("insufficient stock: %d on hand, %d requested", onHand, item.Quantity)
			case errors.Is(err, model.ErrProductNotFound):
				line.Status = dto.LineRejected
				line.Reason = "product not found in stock"
			default:
				// Infrastructure failure: stop the batch and keep the
				// cart so the session can retry.
				return nil, err
			}
			uc.logger.Warn("sale line rejected",
				zap.String("product", item.ProductName),
				zap.Int64("quantity", item.Quantity),
				zap.String("reason", line.Reason))
			result.Rejected++
			result.Lines = append(result.Lines, line)
			continue
		}

		sale, err := uc.salesUC.RecordSale(ctx, item.ProductName, item.Quantity)
		if err != nil {
			// The decrement already happened; the stores share no
			// transaction, so the quantity stays decremented and the
			// discrepancy is surfaced instead of hidden.
			uc.logger.Error("sale record failed after stock decrement",
				zap.String("product", item.ProductName),
				zap.Int64("quantity", item.Quantity),
				zap.Error(err))
			line.Status = dto.LineRejected
			line.Reason = "sale could not be recorded (stock already decremented)"
			result.Rejected++
			result.Lines = append(result.Lines, line)
			continue
		}

		line.Status = dto.LineCommitted
		line.NewQuantity = onHand
		line.SaleID = sale.ID
		result.Committed++
		result.Total = result.Total.Add(item.Subtotal)
		result.Lines = append(result.Lines, line)
	}

	cart.Clear()

	uc.logger.Info("cart committed",
		zap.String("cart_id", cart.ID.String()),
		zap.Int("committed", result.Committed),
		zap.Int("skipped", result.Skipped),
		zap.Int("rejected", result.Rejected),
		zap.String("total", result.Total.StringFixed(2)))
	return result, nil
}
