package commands

import (
	"context"
	"errors"

	"purchasing/internal/pkg/errs"
)

// DeleteOrderCommandHandler handles order deletion.
// Deletion is gated on the Pending status; line items are removed by cascade.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order and deletes it inside one transaction. Fails with
// an ObjectNotFoundError when the order does not exist and with an
// InvalidStateTransitionError when the order is not Pending.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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
			errors.New("only PENDING orders may be deleted"),
		)
	}

	if err = repo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
