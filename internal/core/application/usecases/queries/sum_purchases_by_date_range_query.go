package queries

import (
	"errors"
	"time"

	"purchasing/internal/pkg/guard"
)

var (
	ErrSumPurchasesByDateRangeQueryIsNotConstructed = errors.New(
		"SumPurchasesByDateRangeQuery must be created via NewSumPurchasesByDateRangeQuery constructor",
	)
	ErrDateRangeIsInvalid = errors.New("range start must not be after its end")
)

// SumPurchasesByDateRangeQuery retrieves the sum of order totals for orders
// issued inside an inclusive date range.
type SumPurchasesByDateRangeQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewSumPurchasesByDateRangeQuery creates a query summing purchases issued
// between from and to.
func NewSumPurchasesByDateRangeQuery(from, to time.Time) (SumPurchasesByDateRangeQuery, error) {
	if from.IsZero() || to.IsZero() {
		return SumPurchasesByDateRangeQuery{}, ErrDateRangeIsInvalid
	}
	if from.After(to) {
		return SumPurchasesByDateRangeQuery{}, ErrDateRangeIsInvalid
	}

	return SumPurchasesByDateRangeQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SumPurchasesByDateRangeQuery) Validate() error {
	return q.guard.Validate(ErrSumPurchasesByDateRangeQueryIsNotConstructed)
}

// From returns the inclusive start of the range.
func (q SumPurchasesByDateRangeQuery) From() time.Time {
	return q.from
}

// To returns the inclusive end of the range.
func (q SumPurchasesByDateRangeQuery) To() time.Time {
	return q.to
}
