package ports

import (
	"context"

	"purchasing/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for purchase order
// aggregates. Every method works on the whole aggregate: the header and its
// line items are read and written together, so callers never observe an
// order whose totals and line collection belong to different states.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items and returns the
	// stored aggregate carrying the database-assigned identifiers.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists changes to an existing order aggregate. Line items are
	// reconciled against the stored state: new lines are inserted, changed
	// lines updated, and absent lines deleted. Returns the stored aggregate
	// including identifiers assigned to newly inserted lines.
	Update(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Get retrieves an order aggregate by id with its line-item collection
	// eagerly materialized. Returns an ObjectNotFoundError when absent.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate retrieves an order like Get but takes a row-level lock on
	// the order, so concurrent lifecycle operations on the same order
	// serialize for the duration of the surrounding transaction.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)

	// Delete removes an order and cascades deletion to its line items.
	// Returns an ObjectNotFoundError when absent. Status gating is the
	// caller's responsibility.
	Delete(ctx context.Context, id int64) error

	// FindByInvoiceNumber returns all orders whose invoice number contains
	// the given fragment, compared case-insensitively. Used both for the
	// search operation and, with an exact-match filter on top, for the
	// uniqueness check.
	FindByInvoiceNumber(ctx context.Context, fragment string) ([]*order.Order, error)
}
