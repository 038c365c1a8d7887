package commands

import (
	"context"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/errs"
)

// resolveConflict turns a lost optimistic race into the lifecycle error the
// caller would have seen had it arrived second. The transaction is rolled back
// first so that the re-read observes the competitor's committed state.
func resolveConflict(ctx context.Context, uow OrderUoW, orderID kernel.UUID, cause error) error {
	_ = uow.Rollback(ctx)

	current, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	switch {
	case current.DeliveryCompletedAt() != nil:
		return errs.NewInvalidStateErrorWithCause("order is already delivered", cause)
	case current.Status().IsDispatched():
		return errs.NewInvalidStateErrorWithCause("order is already dispatched", cause)
	case current.Status().IsTerminal():
		return errs.NewInvalidStateErrorWithCause("order is closed", cause)
	default:
		return errs.NewInvalidStateErrorWithCause("order was modified concurrently", cause)
	}
}
