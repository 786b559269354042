package queries

import (
	"context"

	"purchasing/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// CountOrdersByStatusQueryHandler counts orders per lifecycle status.
type CountOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersByStatusQueryHandler creates a handler for status count
// queries.
func NewCountOrdersByStatusQueryHandler(db *gorm.DB) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query. The result always contains an entry for each of
// the four lifecycle statuses.
func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) (map[string]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := map[string]int64{
		order.Pending.String():    0,
		order.InProgress.String(): 0,
		order.Completed.String():  0,
		order.Cancelled.String():  0,
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
