package queries

import (
	"context"
	"database/sql"
	"errors"

	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"

	"gorm.io/gorm"
)

// CanChangeStatusQueryHandler checks transition feasibility against the
// order's current status in the database.
type CanChangeStatusQueryHandler struct {
	db *gorm.DB
}

// NewCanChangeStatusQueryHandler creates a handler for transition
// feasibility queries.
func NewCanChangeStatusQueryHandler(db *gorm.DB) CanChangeStatusQueryHandler {
	return CanChangeStatusQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// with the given identifier exists. A false result is not an error; it means
// the state machine forbids the transition.
func (h CanChangeStatusQueryHandler) Handle(ctx context.Context, query CanChangeStatusQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	var statusName string
	err := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row().Scan(&statusName)
	if errors.Is(err, sql.ErrNoRows) {
		return false, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return false, err
	}

	current, err := order.StatusFromName(statusName)
	if err != nil {
		return false, err
	}

	return current.CanTransitionTo(query.Target()), nil
}
