package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SumPurchasesBySupplierQueryHandler sums order totals per supplier in the
// database.
type SumPurchasesBySupplierQueryHandler struct {
	db *gorm.DB
}

// NewSumPurchasesBySupplierQueryHandler creates a handler for supplier sum
// queries.
func NewSumPurchasesBySupplierQueryHandler(db *gorm.DB) SumPurchasesBySupplierQueryHandler {
	return SumPurchasesBySupplierQueryHandler{db: db}
}

// Handle executes the query. A supplier without orders yields zero rather
// than an error.
func (h SumPurchasesBySupplierQueryHandler) Handle(
	ctx context.Context,
	query SumPurchasesBySupplierQuery,
) (decimal.Decimal, error) {
	if err := query.Validate(); err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE supplier_id = ?
	`, query.SupplierID()).Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}
