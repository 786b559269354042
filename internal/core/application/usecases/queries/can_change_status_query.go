package queries

import (
	"errors"

	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/guard"
)

var ErrCanChangeStatusQueryIsNotConstructed = errors.New(
	"CanChangeStatusQuery must be created via NewCanChangeStatusQuery constructor",
)

// CanChangeStatusQuery checks whether an order may move to a target status
// without performing the transition.
type CanChangeStatusQuery struct {
	orderID int64
	target  order.Status

	guard guard.ConstructorGuard
}

// NewCanChangeStatusQuery creates a transition feasibility query.
func NewCanChangeStatusQuery(orderID int64, target order.Status) (CanChangeStatusQuery, error) {
	if orderID <= 0 {
		return CanChangeStatusQuery{}, ErrOrderIDIsInvalid
	}
	if err := target.Validate(); err != nil {
		return CanChangeStatusQuery{}, err
	}

	return CanChangeStatusQuery{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CanChangeStatusQuery) Validate() error {
	return q.guard.Validate(ErrCanChangeStatusQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to check.
func (q CanChangeStatusQuery) OrderID() int64 {
	return q.orderID
}

// Target returns the status the transition is checked against.
func (q CanChangeStatusQuery) Target() order.Status {
	return q.target
}
