package commands

import (
	"context"
	"errors"

	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"
)

// UpdateLineItemCommandHandler overwrites the attributes of a line item on a
// Pending order and persists the aggregate with recomputed totals.
type UpdateLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateLineItemCommandHandler creates a handler for updating line items.
func NewUpdateLineItemCommandHandler(uowFactory OrderUoWFactory) UpdateLineItemCommandHandler {
	return UpdateLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the new attributes to the line item inside one transaction
// and returns the stored line. Fails with an ObjectNotFoundError when the
// order or the line item does not exist and with an
// InvalidStateTransitionError when the order is not Pending.
func (h *UpdateLineItemCommandHandler) Handle(ctx context.Context, cmd UpdateLineItemCommand) (*order.LineItem, error) {
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

	if !aggregate.IsPending() {
		return nil, errs.NewInvalidStateTransitionErrorWithCause(
			aggregate.Status().String(), "",
			errors.New("line items may only be updated on PENDING orders"),
		)
	}

	lineItem, err := aggregate.LineItem(cmd.LineItemID())
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		lineItem.ChangeProduct(cmd.ProductID(), cmd.ProductName()),
		lineItem.ChangeQuantity(cmd.Quantity()),
		lineItem.ChangeUnitPrice(cmd.UnitPrice()),
		lineItem.ChangeDiscount(cmd.Discount()),
	); err != nil {
		return nil, err
	}
	aggregate.RecomputeTotals()

	stored, err := repo.Update(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored.LineItem(cmd.LineItemID())
}
