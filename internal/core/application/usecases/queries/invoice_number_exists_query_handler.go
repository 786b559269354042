package queries

import (
	"context"

	"gorm.io/gorm"
)

// InvoiceNumberExistsQueryHandler checks invoice number uniqueness in the
// database. Candidates are found by case-insensitive substring search, but
// only an exact match counts as existing.
type InvoiceNumberExistsQueryHandler struct {
	db *gorm.DB
}

// NewInvoiceNumberExistsQueryHandler creates a handler for invoice existence
// queries.
func NewInvoiceNumberExistsQueryHandler(db *gorm.DB) InvoiceNumberExistsQueryHandler {
	return InvoiceNumberExistsQueryHandler{db: db}
}

// Handle executes the query.
func (h InvoiceNumberExistsQueryHandler) Handle(
	ctx context.Context,
	query InvoiceNumberExistsQuery,
) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT invoice_number
		FROM orders
		WHERE invoice_number ILIKE ?
	`, "%"+query.InvoiceNumber()+"%").Rows()
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var invoiceNumber string

		if err = rows.Scan(&invoiceNumber); err != nil {
			return false, err
		}
		if invoiceNumber == query.InvoiceNumber() {
			return true, nil
		}
	}

	return false, rows.Err()
}
