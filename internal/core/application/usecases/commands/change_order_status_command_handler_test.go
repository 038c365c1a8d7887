package commands_test

import (
	"testing"

	"freshcart/internal/core/application/usecases/commands"
	"freshcart/internal/core/domain/model/order"
	"freshcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	loaded := newPendingOrder(t, order.PaymentMethodOnline)
	factory, uow, repo := newCompleteMocks()

	repo.On("Get", ctx, loaded.ID()).Return(loaded, nil).Once()
	repo.On("Update", ctx, loaded).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewChangeOrderStatusCommand(loaded.ID(), "approved")
	require.NoError(t, err)

	handler := commands.NewChangeOrderStatusCommandHandler(factory, fixedClock{testNow})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Approved, loaded.Status())
	assert.Equal(t, testNow, loaded.Timeline()[1].At())
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ForbiddenTransition(t *testing.T) {
	ctx := t.Context()
	loaded := newPendingOrder(t, order.PaymentMethodOnline)
	factory, uow, repo := newCompleteMocks()

	repo.On("Get", ctx, loaded.ID()).Return(loaded, nil).Once()

	cmd, err := commands.NewChangeOrderStatusCommand(loaded.ID(), "out_for_delivery")
	require.NoError(t, err)

	handler := commands.NewChangeOrderStatusCommandHandler(factory, fixedClock{testNow})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Len(t, loaded.Timeline(), 1)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_CancelDispatched(t *testing.T) {
	ctx := t.Context()
	loaded := restoreDispatched(t, newPendingOrder(t, order.PaymentMethodCOD).ID(), order.PaymentMethodCOD, 2)
	factory, uow, repo := newCompleteMocks()

	repo.On("Get", ctx, loaded.ID()).Return(loaded, nil).Once()
	repo.On("Update", ctx, loaded).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewChangeOrderStatusCommand(loaded.ID(), "cancelled")
	require.NoError(t, err)

	handler := commands.NewChangeOrderStatusCommandHandler(factory, fixedClock{testNow})
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.BucketCancelled, loaded.Bucket())
	assert.True(t, loaded.CustomerOTP().IsZero())
}
