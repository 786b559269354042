package commands

import (
	"context"

	"purchasing/internal/core/ports"
)

// invoiceNumberExists reports whether an order with exactly this invoice
// number is already stored. The repository search is case-insensitive and
// substring-based; the candidates are then filtered with an exact match,
// mirroring the semantics of the invoice validation endpoint.
func invoiceNumberExists(ctx context.Context, repo ports.OrderRepository, invoiceNumber string) (bool, error) {
	matches, err := repo.FindByInvoiceNumber(ctx, invoiceNumber)
	if err != nil {
		return false, err
	}

	for _, match := range matches {
		if match.InvoiceNumber() == invoiceNumber {
			return true, nil
		}
	}
	return false, nil
}
