package commands

import (
	"context"
	"errors"

	"purchasing/internal/pkg/errs"
)

// RemoveLineItemCommandHandler detaches a line item from a Pending order and
// persists the aggregate with recomputed totals.
type RemoveLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveLineItemCommandHandler creates a handler for removing line items.
func NewRemoveLineItemCommandHandler(uowFactory OrderUoWFactory) RemoveLineItemCommandHandler {
	return RemoveLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the line item from the order inside one transaction. Fails
// with an ObjectNotFoundError when the order or the line item does not exist
// and with an InvalidStateTransitionError when the order is not Pending.
func (h *RemoveLineItemCommandHandler) Handle(ctx context.Context, cmd RemoveLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.IsPending() {
		return errs.NewInvalidStateTransitionErrorWithCause(
			aggregate.Status().String(), "",
			errors.New("line items may only be removed from PENDING orders"),
		)
	}

	if err = aggregate.RemoveLineItem(cmd.LineItemID()); err != nil {
		return err
	}

	if _, err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
