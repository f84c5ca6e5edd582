package checkout

import (
	"context"

	"github.com/tiendapos/inventory-service/internal/checkout/dto"
	"github.com/tiendapos/inventory-service/internal/model"
)

type UseCase interface {
	// Commit processes the cart's lines in submission order: cancelled
	// lines are skipped, the rest decrement stock and append a sale
	// record. A line that fails its stock decrement is reported and the
	// batch continues; there is no rollback of earlier lines. The cart
	// is cleared before Commit returns regardless of per-line outcomes.
	// The error return is reserved for infrastructure failures, in which
	// case the cart is left intact for a retry.
	Commit(ctx context.Context, cart *model.Cart) (*dto.CommitResult, error)
}
