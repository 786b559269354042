package queries

import (
	"errors"

	"purchasing/internal/pkg/guard"
)

var (
	ErrInvoiceNumberExistsQueryIsNotConstructed = errors.New(
		"InvoiceNumberExistsQuery must be created via NewInvoiceNumberExistsQuery constructor",
	)
	ErrInvoiceNumberIsRequired = errors.New("invoice number is required")
)

// InvoiceNumberExistsQuery checks whether an order with the exact given
// invoice number is already registered.
type InvoiceNumberExistsQuery struct {
	invoiceNumber string

	guard guard.ConstructorGuard
}

// NewInvoiceNumberExistsQuery creates an invoice existence query.
func NewInvoiceNumberExistsQuery(invoiceNumber string) (InvoiceNumberExistsQuery, error) {
	if invoiceNumber == "" {
		return InvoiceNumberExistsQuery{}, ErrInvoiceNumberIsRequired
	}

	return InvoiceNumberExistsQuery{
		invoiceNumber: invoiceNumber,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q InvoiceNumberExistsQuery) Validate() error {
	return q.guard.Validate(ErrInvoiceNumberExistsQueryIsNotConstructed)
}

// InvoiceNumber returns the invoice number to check.
func (q InvoiceNumberExistsQuery) InvoiceNumber() string {
	return q.invoiceNumber
}
