package queries

import (
	"errors"

	"purchasing/internal/pkg/guard"
)

var (
	ErrSumPurchasesBySupplierQueryIsNotConstructed = errors.New(
		"SumPurchasesBySupplierQuery must be created via NewSumPurchasesBySupplierQuery constructor",
	)
	ErrSupplierIDIsInvalid = errors.New("supplier id must be greater than 0")
)

// SumPurchasesBySupplierQuery retrieves the sum of order totals for one
// supplier across all statuses.
type SumPurchasesBySupplierQuery struct {
	supplierID int64

	guard guard.ConstructorGuard
}

// NewSumPurchasesBySupplierQuery creates a query summing one supplier's
// purchases.
func NewSumPurchasesBySupplierQuery(supplierID int64) (SumPurchasesBySupplierQuery, error) {
	if supplierID <= 0 {
		return SumPurchasesBySupplierQuery{}, ErrSupplierIDIsInvalid
	}

	return SumPurchasesBySupplierQuery{
		supplierID: supplierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SumPurchasesBySupplierQuery) Validate() error {
	return q.guard.Validate(ErrSumPurchasesBySupplierQueryIsNotConstructed)
}

// SupplierID returns the supplier whose purchases are summed.
func (q SumPurchasesBySupplierQuery) SupplierID() int64 {
	return q.supplierID
}
