package commands_test

import (
	"context"
	"testing"
	"time"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddLineItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewAddLineItemCommand(1, newTestLineItem(t))
	require.NoError(t, err)

	existing := restoredOrder(t, 1, order.Pending)

	// The stored aggregate carries the prior line plus the new one with its
	// database-assigned identifier.
	issuedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	kept, err := order.RestoreLineItem(11, 1, 7, "Resma papel A4", 2, dec(t, "50.00"), dec(t, "0"))
	require.NoError(t, err)
	added, err := order.RestoreLineItem(12, 1, 7, "Resma papel A4", 2, dec(t, "50.00"), dec(t, "0"))
	require.NoError(t, err)
	stored, err := order.RestoreOrder(
		1, 42, "FAC-2024-001", issuedAt, nil,
		dec(t, "10.00"), order.Pending, "",
		issuedAt, issuedAt,
		[]*order.LineItem{kept, added},
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, int64(1)).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineItemCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.ID())
	assert.Equal(t, int64(1), got.OrderID())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddLineItemCommandHandler_Handle_StoredLineMissing(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewAddLineItemCommand(1, newTestLineItem(t))
	require.NoError(t, err)

	existing := restoredOrder(t, 1, order.Pending)

	// The stored aggregate carries no line beyond the prior one, so the new
	// line cannot be resolved and its order is reported missing.
	stored := restoredOrder(t, 1, order.Pending)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, int64(1)).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.ErrorContains(t, err, "1")
}

func TestAddLineItemCommandHandler_Handle_OrderIsNotPending(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewAddLineItemCommand(1, newTestLineItem(t))
	require.NoError(t, err)

	existing := restoredOrder(t, 1, order.Completed)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, int64(1)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAddLineItemCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewAddLineItemCommand(99, newTestLineItem(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, int64(99)).Return(nil, errs.NewObjectNotFoundError("order", int64(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
