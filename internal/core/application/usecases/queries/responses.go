package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderResponse represents a purchase order as returned by read-side queries.
// Line items are always loaded together with their order.
type OrderResponse struct {
	ID            int64
	SupplierID    int64
	InvoiceNumber string
	IssuedAt      time.Time
	DeliveredAt   *time.Time
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Status        string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LineItems     []LineItemResponse
}

// LineItemResponse represents a single line of a purchase order.
type LineItemResponse struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	Subtotal    decimal.Decimal
}

// queryOrders loads order headers matching the given SQL tail (WHERE/ORDER BY
// clauses) and attaches their line items.
func queryOrders(ctx context.Context, db *gorm.DB, tail string, args ...any) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			supplier_id,
			invoice_number,
			issued_at,
			delivered_at,
			subtotal,
			tax,
			total,
			status,
			notes,
			created_at,
			updated_at
		FROM orders
	`+tail, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp OrderResponse
		var deliveredAt sql.NullTime

		err = rows.Scan(
			&resp.ID,
			&resp.SupplierID,
			&resp.InvoiceNumber,
			&resp.IssuedAt,
			&deliveredAt,
			&resp.Subtotal,
			&resp.Tax,
			&resp.Total,
			&resp.Status,
			&resp.Notes,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if deliveredAt.Valid {
			t := deliveredAt.Time
			resp.DeliveredAt = &t
		}
		resp.LineItems = make([]LineItemResponse, 0)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	return attachLineItems(ctx, db, orders)
}

func attachLineItems(ctx context.Context, db *gorm.DB, orders []OrderResponse) ([]OrderResponse, error) {
	ids := make([]int64, 0, len(orders))
	byID := make(map[int64]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			product_name,
			quantity,
			unit_price,
			discount,
			subtotal
		FROM order_line_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var li LineItemResponse

		err = rows.Scan(
			&li.ID,
			&li.OrderID,
			&li.ProductID,
			&li.ProductName,
			&li.Quantity,
			&li.UnitPrice,
			&li.Discount,
			&li.Subtotal,
		)
		if err != nil {
			return nil, err
		}

		i := byID[li.OrderID]
		orders[i].LineItems = append(orders[i].LineItems, li)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
