package postgres_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"freshcart/internal/adapters/out/clock"
	"freshcart/internal/adapters/out/otpgen"
	"freshcart/internal/core/application/usecases/commands"
	"freshcart/internal/core/domain/model/order"
	"freshcart/internal/core/domain/services"
	"freshcart/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

type orderUoWFactory func() commands.OrderUoW

func (f orderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// TestCompleteDelivery_ConcurrentSubmissions sends the correct customer code
// twice at the same time. The version check lets one through; the other sees
// the order as already delivered.
func (suite *UnitOfWorkIntegrationTestSuite) TestCompleteDelivery_ConcurrentSubmissions() {
	ctx := context.Background()
	o := suite.seedOrder(ctx)
	p := suite.seedPartner(ctx)

	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Dispatch(p.ID(), mustOTP(suite.T(), "654321"), mustOTP(suite.T(), "123456"), time.Now()))
	suite.Require().NoError(suite.factory.Create().OrderRepository().Update(ctx, loaded))

	handler := commands.NewCompleteDeliveryCommandHandler(
		orderUoWFactory(func() commands.OrderUoW { return suite.factory.Create() }),
		services.NewDeliveryHandshake(otpgen.NewHOTPGenerator(), clock.NewSystemClock()),
	)
	cmd, err := commands.NewCompleteDeliveryCommand(o.ID(), "123456")
	suite.Require().NoError(err)

	const submissions = 2
	start := make(chan struct{})
	results := make(chan error, submissions)
	var wg sync.WaitGroup
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results <- handler.Handle(ctx, cmd)
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, errs.ErrInvalidState):
			rejected++
		default:
			suite.Failf("unexpected error", "%v", err)
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, rejected)

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, stored.Status())
	suite.Equal(order.PaymentPaid, stored.PaymentStatus())

	delivered := 0
	for _, entry := range stored.Timeline() {
		if entry.Status() == order.Delivered {
			delivered++
		}
	}
	suite.Equal(1, delivered)
	suite.Len(stored.Timeline(), 3)
}
