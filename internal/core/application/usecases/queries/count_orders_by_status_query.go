package queries

import (
	"errors"

	"purchasing/internal/pkg/guard"
)

var ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
	"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
)

// CountOrdersByStatusQuery retrieves the number of purchase orders per
// lifecycle status. Statuses without orders are reported with a zero count.
type CountOrdersByStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewCountOrdersByStatusQuery creates a parameterless status count query.
func NewCountOrdersByStatusQuery() CountOrdersByStatusQuery {
	return CountOrdersByStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}
