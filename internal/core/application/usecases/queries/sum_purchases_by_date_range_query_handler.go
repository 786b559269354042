package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SumPurchasesByDateRangeQueryHandler sums order totals over an issue date
// range. Totals are summed in application code with exact decimals; the
// database only selects the matching rows.
type SumPurchasesByDateRangeQueryHandler struct {
	db *gorm.DB
}

// NewSumPurchasesByDateRangeQueryHandler creates a handler for date range
// sum queries.
func NewSumPurchasesByDateRangeQueryHandler(db *gorm.DB) SumPurchasesByDateRangeQueryHandler {
	return SumPurchasesByDateRangeQueryHandler{db: db}
}

// Handle executes the query. A range without orders yields zero rather than
// an error.
func (h SumPurchasesByDateRangeQueryHandler) Handle(
	ctx context.Context,
	query SumPurchasesByDateRangeQuery,
) (decimal.Decimal, error) {
	if err := query.Validate(); err != nil {
		return decimal.Zero, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT total
		FROM orders
		WHERE issued_at >= ? AND issued_at <= ?
	`, query.From(), query.To()).Rows()
	if err != nil {
		return decimal.Zero, err
	}
	defer rows.Close()

	sum := decimal.Zero
	for rows.Next() {
		var total decimal.Decimal

		if err = rows.Scan(&total); err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(total)
	}

	if err = rows.Err(); err != nil {
		return decimal.Zero, err
	}

	return sum, nil
}
