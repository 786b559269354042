package queries

import (
	"errors"
	"time"

	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrSupplierIDFilterIsInvalid = errors.New("supplier id filter must be greater than 0")
	ErrIssuedAtRangeIsInvalid    = errors.New("issue date range start must not be after its end")
)

// ListOrdersQuery retrieves purchase orders matching a set of optional
// filters. Filters compose with AND semantics; a query with no filters
// returns every order.
type ListOrdersQuery struct {
	status          *order.Status
	supplierID      *int64
	issuedFrom      *time.Time
	issuedTo        *time.Time
	invoiceFragment string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query listing all orders.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// WithStatus restricts the result to orders in the given status.
func (q ListOrdersQuery) WithStatus(status order.Status) (ListOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	q.status = &status
	return q, nil
}

// WithSupplierID restricts the result to orders of the given supplier.
func (q ListOrdersQuery) WithSupplierID(supplierID int64) (ListOrdersQuery, error) {
	if supplierID <= 0 {
		return ListOrdersQuery{}, ErrSupplierIDFilterIsInvalid
	}
	q.supplierID = &supplierID
	return q, nil
}

// WithIssuedBetween restricts the result to orders issued inside the given
// inclusive range.
func (q ListOrdersQuery) WithIssuedBetween(from, to time.Time) (ListOrdersQuery, error) {
	if from.After(to) {
		return ListOrdersQuery{}, ErrIssuedAtRangeIsInvalid
	}
	q.issuedFrom = &from
	q.issuedTo = &to
	return q, nil
}

// WithInvoiceFragment restricts the result to orders whose invoice number
// contains the given fragment, ignoring case.
func (q ListOrdersQuery) WithInvoiceFragment(fragment string) ListOrdersQuery {
	q.invoiceFragment = fragment
	return q
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, nil when unset.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// SupplierID returns the supplier filter, nil when unset.
func (q ListOrdersQuery) SupplierID() *int64 {
	return q.supplierID
}

// IssuedFrom returns the start of the issue date filter, nil when unset.
func (q ListOrdersQuery) IssuedFrom() *time.Time {
	return q.issuedFrom
}

// IssuedTo returns the end of the issue date filter, nil when unset.
func (q ListOrdersQuery) IssuedTo() *time.Time {
	return q.issuedTo
}

// InvoiceFragment returns the invoice number filter, empty when unset.
func (q ListOrdersQuery) InvoiceFragment() string {
	return q.invoiceFragment
}
