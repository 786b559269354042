package commands_test

import (
	"context"
	"testing"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveLineItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRemoveLineItemCommand(1, 11)
	require.NoError(t, err)

	existing := restoredOrder(t, 1, order.Pending)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, int64(1)).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(existing, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveLineItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Empty(t, existing.LineItems())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveLineItemCommandHandler_Handle_OrderIsNotPending(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRemoveLineItemCommand(1, 11)
	require.NoError(t, err)

	existing := restoredOrder(t, 1, order.Cancelled)

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

	h := commands.NewRemoveLineItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRemoveLineItemCommandHandler_Handle_LineItemNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRemoveLineItemCommand(1, 404)
	require.NoError(t, err)

	existing := restoredOrder(t, 1, order.Pending)

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

	h := commands.NewRemoveLineItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
