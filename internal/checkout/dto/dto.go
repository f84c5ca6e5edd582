package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LineStatus string

const (
	// LineCommitted: stock decremented and a sale record appended.
	LineCommitted LineStatus = "committed"
	// LineSkipped: the line was cancelled before commit; no effects.
	LineSkipped LineStatus = "skipped"
	// LineRejected: stock could not be decremented; no sale record.
	LineRejected LineStatus = "rejected"
)

type LineResult struct {
	ProductName string
	Quantity    int64
	Status      LineStatus

	// NewQuantity and SaleID are set on committed lines only.
	NewQuantity int64
	SaleID      int64

	// Reason is set on rejected lines, e.g. the current stock level.
	Reason string
}

// CommitResult aggregates the per-line outcomes of one batch, in
// submission order.
type CommitResult struct {
	CartID    uuid.UUID
	Lines     []LineResult
	Committed int
	Skipped   int
	Rejected  int

	// Total is the sum of the committed subtotals.
	Total decimal.Decimal
}
