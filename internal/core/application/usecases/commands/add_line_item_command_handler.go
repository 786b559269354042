package commands

import (
	"context"
	"errors"

	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"
)

// AddLineItemCommandHandler attaches a new line item to a Pending order and
// persists the aggregate with recomputed totals.
type AddLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddLineItemCommandHandler creates a handler for adding line items.
func NewAddLineItemCommandHandler(uowFactory OrderUoWFactory) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the line item to the order inside one transaction and returns
// the stored line with its assigned identifier. Fails with an
// ObjectNotFoundError when the order does not exist and with an
// InvalidStateTransitionError when the order is not Pending.
func (h *AddLineItemCommandHandler) Handle(ctx context.Context, cmd AddLineItemCommand) (*order.LineItem, error) {
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
			errors.New("line items may only be added to PENDING orders"),
		)
	}

	priorIDs := make(map[int64]struct{}, len(aggregate.LineItems()))
	for _, li := range aggregate.LineItems() {
		priorIDs[li.ID()] = struct{}{}
	}

	if err = aggregate.AddLineItem(cmd.LineItem()); err != nil {
		return nil, err
	}

	stored, err := repo.Update(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, li := range stored.LineItems() {
		if _, ok := priorIDs[li.ID()]; !ok {
			return li, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("line item of order", cmd.OrderID())
}
