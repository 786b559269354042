package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves filtered purchase orders from the
// database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order ID for consistent
// output; an empty result is a valid outcome, not an error.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, status.String())
	}
	if supplierID := query.SupplierID(); supplierID != nil {
		conditions = append(conditions, "supplier_id = ?")
		args = append(args, *supplierID)
	}
	if from := query.IssuedFrom(); from != nil {
		conditions = append(conditions, "issued_at >= ? AND issued_at <= ?")
		args = append(args, *from, *query.IssuedTo())
	}
	if fragment := query.InvoiceFragment(); fragment != "" {
		conditions = append(conditions, "invoice_number ILIKE ?")
		args = append(args, "%"+fragment+"%")
	}

	tail := ""
	if len(conditions) > 0 {
		tail = "WHERE " + strings.Join(conditions, " AND ") + " "
	}
	tail += "ORDER BY id"

	return queryOrders(ctx, h.db, tail, args...)
}
