package commands

import (
	"context"

	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Enforces invoice number uniqueness, defaults the issue timestamp and the
// Pending status, and computes totals from any supplied line items.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command inside one transaction.
// Fails with a DuplicateInvoiceNumberError when an order with the same
// invoice number already exists. Returns the stored order including the
// identifiers assigned by the database.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	exists, err := invoiceNumberExists(ctx, repo, cmd.InvoiceNumber())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewDuplicateInvoiceNumberError(cmd.InvoiceNumber())
	}

	aggregate, err := order.NewOrder(
		cmd.SupplierID(),
		cmd.InvoiceNumber(),
		cmd.IssuedAt(),
		cmd.DeliveredAt(),
		cmd.Tax(),
		cmd.Notes(),
	)
	if err != nil {
		return nil, err
	}

	for _, li := range cmd.LineItems() {
		if err = aggregate.AddLineItem(li); err != nil {
			return nil, err
		}
	}

	stored, err := repo.Add(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
