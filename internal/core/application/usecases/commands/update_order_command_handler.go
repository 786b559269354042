package commands

import (
	"context"

	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles header updates on existing orders.
// When the invoice number changes, uniqueness is re-checked before the
// update is persisted.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order header updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, overwrites its header fields, and persists the
// result inside one transaction. Fails with an ObjectNotFoundError when the
// order does not exist and with a DuplicateInvoiceNumberError when the new
// invoice number collides with another order.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	aggregate, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if aggregate.InvoiceNumber() != cmd.InvoiceNumber() {
		exists, existsErr := invoiceNumberExists(ctx, repo, cmd.InvoiceNumber())
		if existsErr != nil {
			return nil, existsErr
		}
		if exists {
			return nil, errs.NewDuplicateInvoiceNumberError(cmd.InvoiceNumber())
		}
	}

	if err = aggregate.UpdateHeader(
		cmd.SupplierID(),
		cmd.InvoiceNumber(),
		cmd.IssuedAt(),
		cmd.DeliveredAt(),
		cmd.Notes(),
	); err != nil {
		return nil, err
	}

	stored, err := repo.Update(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
