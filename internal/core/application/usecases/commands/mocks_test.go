package commands_test

import (
	"context"
	"testing"
	"time"

	"freshcart/internal/core/application/usecases/commands"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"
	"freshcart/internal/core/domain/model/partner"
	"freshcart/internal/core/domain/services"
	"freshcart/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Update(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

// MockUoW satisfies OrderUoW, PartnerUoW and UoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// sequenceCodes hands out the given codes in order.
type sequenceCodes struct{ codes []string }

func (s *sequenceCodes) Generate() (kernel.OTP, error) {
	next := s.codes[0]
	s.codes = s.codes[1:]
	return kernel.NewOTP(next)
}

var testNow = time.Date(2026, 7, 9, 12, 0, 0, 0, time.UTC)

func newHandshake(codes ...string) *services.DeliveryHandshake {
	return services.NewDeliveryHandshake(&sequenceCodes{codes: codes}, fixedClock{testNow})
}

func newPendingOrder(t *testing.T, method order.PaymentMethod) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), method, order.PaymentPending, testNow.Add(-time.Hour))
	require.NoError(t, err)
	return o
}

func newActivePartner(t *testing.T) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(kernel.NewUUID(), "Asha", "9845012345")
	require.NoError(t, err)
	return p
}

// restoreDispatched builds an order as the repository would load it after
// dispatch, holding customer code 123456.
func restoreDispatched(t *testing.T, id kernel.UUID, method order.PaymentMethod, version int) *order.Order {
	t.Helper()
	partnerID := kernel.NewUUID()
	deliveryOTP, err := kernel.NewOTP("654321")
	require.NoError(t, err)
	customerOTP, err := kernel.NewOTP("123456")
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.State{
		ID:                id,
		CustomerID:        kernel.NewUUID(),
		Status:            order.OutForDelivery,
		Timeline:          []order.TimelineEntry{order.NewTimelineEntry(order.Pending, testNow), order.NewTimelineEntry(order.OutForDelivery, testNow)},
		DeliveryOTP:       deliveryOTP,
		CustomerOTP:       customerOTP,
		DeliveryPartnerID: &partnerID,
		PaymentMethod:     method,
		PaymentStatus:     order.PaymentPending,
		Version:           version,
	})
	require.NoError(t, err)
	return o
}

func restoreDelivered(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	partnerID := kernel.NewUUID()
	completedAt := testNow
	o, err := order.RestoreOrder(order.State{
		ID:                  id,
		CustomerID:          kernel.NewUUID(),
		Status:              order.Delivered,
		Timeline:            []order.TimelineEntry{order.NewTimelineEntry(order.Pending, testNow), order.NewTimelineEntry(order.Delivered, testNow)},
		DeliveryPartnerID:   &partnerID,
		PaymentMethod:       order.PaymentMethodCOD,
		PaymentStatus:       order.PaymentPaid,
		DeliveryCompletedAt: &completedAt,
		Version:             2,
	})
	require.NoError(t, err)
	return o
}
