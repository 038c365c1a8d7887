package commands_test

import (
	"errors"
	"testing"

	"freshcart/internal/core/application/usecases/commands"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"
	"freshcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCompleteMocks() (*MockOrderUoWFactory, *MockUoW, *MockOrderRepository) {
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", mock.Anything).Return(nil)
	return factory, uow, repo
}

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	loaded := restoreDispatched(t, orderID, order.PaymentMethodCOD, 4)
	factory, uow, repo := newCompleteMocks()

	repo.On("Get", ctx, orderID).Return(loaded, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.Status() == order.Delivered &&
			o.PaymentStatus() == order.PaymentPaid &&
			o.DeliveryCompletedAt() != nil &&
			o.Version() == 4
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, "123456")
	require.NoError(t, err)

	handler := commands.NewCompleteDeliveryCommandHandler(factory, newHandshake())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, testNow, *loaded.DeliveryCompletedAt())
	assert.Len(t, loaded.Timeline(), 3)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	loaded := restoreDispatched(t, orderID, order.PaymentMethodCOD, 1)
	factory, uow, repo := newCompleteMocks()

	repo.On("Get", ctx, orderID).Return(loaded, nil).Once()

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, "000000")
	require.NoError(t, err)

	handler := commands.NewCompleteDeliveryCommandHandler(factory, newHandshake())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "Invalid OTP", errs.Message(err))
	assert.Equal(t, order.OutForDelivery, loaded.Status())
	assert.Equal(t, order.PaymentPending, loaded.PaymentStatus())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCompleteDeliveryCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	factory, _, repo := newCompleteMocks()

	repo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, "123456")
	require.NoError(t, err)

	handler := commands.NewCompleteDeliveryCommandHandler(factory, newHandshake())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCompleteDeliveryCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	delivered := restoreDelivered(t, orderID)
	factory, _, repo := newCompleteMocks()

	repo.On("Get", ctx, orderID).Return(delivered, nil).Once()

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, "123456")
	require.NoError(t, err)

	handler := commands.NewCompleteDeliveryCommandHandler(factory, newHandshake())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, testNow, *delivered.DeliveryCompletedAt())
}

func TestCompleteDeliveryCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	loaded := restoreDispatched(t, orderID, order.PaymentMethodCOD, 1)
	winner := restoreDelivered(t, orderID)
	factory, uow, repo := newCompleteMocks()

	repo.On("Get", ctx, orderID).Return(loaded, nil).Once()
	repo.On("Update", ctx, loaded).Return(errs.NewVersionIsInvalidError("order")).Once()
	repo.On("Get", ctx, orderID).Return(winner, nil).Once()

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, "123456")
	require.NoError(t, err)

	handler := commands.NewCompleteDeliveryCommandHandler(factory, newHandshake())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, "order is already delivered", errs.Message(err))
	repo.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCompleteDeliveryCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	factory, uow, repo := newCompleteMocks()

	repo.On("Get", ctx, orderID).Return(restoreDispatched(t, orderID, order.PaymentMethodOnline, 1), nil).Once()
	repo.On("Update", ctx, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, "123456")
	require.NoError(t, err)

	handler := commands.NewCompleteDeliveryCommandHandler(factory, newHandshake())
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
}
