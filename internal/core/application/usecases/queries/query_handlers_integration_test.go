package queries_test

import (
	"context"
	"testing"
	"time"

	"freshcart/internal/adapters/out/postgres/orderrepo"
	"freshcart/internal/adapters/out/postgres/partnerrepo"
	"freshcart/internal/core/application/usecases/queries"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"
	"freshcart/internal/core/domain/model/partner"
	"freshcart/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type QueryHandlersTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	partnerRepo *partnerrepo.GormPartnerRepository
	placedAt    time.Time
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.TimelineEntryDTO{}, &partnerrepo.PartnerDTO{})
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.partnerRepo = partnerrepo.NewGormPartnerRepository(db, &mockAggregateTracker{})
	suite.placedAt = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_status_timeline, orders, delivery_partners").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_ReturnsSnapshotWithTimeline() {
	ctx := context.Background()
	p := suite.addPartner("Kiran", true)
	o := suite.addOrder(kernel.NewUUID(), 0)
	dispatched := suite.dispatch(o.ID(), p.ID(), "246810", "135790")

	query, err := queries.NewGetOrderQuery(o.ID().String())
	suite.Require().NoError(err)

	snapshot, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(snapshot.ID.IsEqual(o.ID()))
	suite.True(snapshot.CustomerID.IsEqual(o.CustomerID()))
	suite.Equal("out_for_delivery", snapshot.Status.Code)
	suite.Equal("Out for Delivery", snapshot.Status.Label)
	suite.Equal(order.BucketUnderDelivery, snapshot.Status.Bucket)
	suite.Require().NotNil(snapshot.DeliveryPartnerID)
	suite.True(snapshot.DeliveryPartnerID.IsEqual(p.ID()))
	suite.Equal("COD", snapshot.PaymentMethod)
	suite.Equal("pending", snapshot.PaymentStatus)
	suite.Nil(snapshot.DeliveryCompletedAt)
	suite.Equal(dispatched.Version()+1, snapshot.Version)
	suite.True(snapshot.PlacedAt.Equal(suite.placedAt))

	suite.Equal("246810", snapshot.DeliveryOTP)

	suite.Require().Len(snapshot.Timeline, 2)
	suite.Equal("Order Placed", snapshot.Timeline[0].Status.Label)
	suite.Equal("out_for_delivery", snapshot.Timeline[1].Status.Code)
}

// TestGetOrder_DeliveredOrderHasNoCode reads the order the way dispatch does
// after a completion already cleared the codes.
func (suite *QueryHandlersTestSuite) TestGetOrder_DeliveredOrderHasNoCode() {
	ctx := context.Background()
	p := suite.addPartner("Nisha", true)
	o := suite.addOrder(kernel.NewUUID(), 0)
	suite.dispatch(o.ID(), p.ID(), "246810", "135790")

	loaded, err := suite.orderRepo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	submitted, err := kernel.NewOTP("135790")
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.CompleteDelivery(submitted, suite.placedAt.Add(time.Hour)))
	suite.Require().NoError(suite.orderRepo.Update(ctx, loaded))

	query, err := queries.NewGetOrderQuery(o.ID().String())
	suite.Require().NoError(err)
	snapshot, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("delivered", snapshot.Status.Code)
	suite.Empty(snapshot.DeliveryOTP)
	suite.Require().NotNil(snapshot.DeliveryCompletedAt)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID().String())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_KeepsUnknownStoredStatus() {
	o := suite.addOrder(kernel.NewUUID(), 0)
	suite.setRawStatus(o.ID(), "Awaiting Farmer Pickup")

	query, err := queries.NewGetOrderQuery(o.ID().String())
	suite.Require().NoError(err)

	snapshot, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("Awaiting Farmer Pickup", snapshot.Status.Code)
	suite.Equal(order.BucketProcessing, snapshot.Status.Bucket)
	suite.Empty(snapshot.DeliveryOTP)
}

// TestGetCustomerOrders_GroupsByBucket places one order per bucket plus an
// order of another customer and checks grouping, ordering and OTP exposure.
func (suite *QueryHandlersTestSuite) TestGetCustomerOrders_GroupsByBucket() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	p := suite.addPartner("Lata", true)

	older := suite.addOrder(customerID, 0)
	newer := suite.addOrder(customerID, time.Hour)
	shipping := suite.addOrder(customerID, 2*time.Hour)
	suite.dispatch(shipping.ID(), p.ID(), "111222", "012345")
	legacy := suite.addOrder(customerID, 3*time.Hour)
	suite.setRawStatus(legacy.ID(), "Delivered to Customer")
	suite.addOrder(kernel.NewUUID(), 0)

	query, err := queries.NewGetCustomerOrdersQuery(customerID.String())
	suite.Require().NoError(err)

	groups, err := queries.NewGetCustomerOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(groups, 4)

	suite.Equal(order.BucketProcessing, groups[0].Bucket)
	suite.Require().Len(groups[0].Orders, 2)
	suite.True(groups[0].Orders[0].ID.IsEqual(newer.ID()), "newest first")
	suite.True(groups[0].Orders[1].ID.IsEqual(older.ID()))
	suite.Empty(groups[0].Orders[0].CustomerOTP)

	suite.Equal(order.BucketUnderDelivery, groups[1].Bucket)
	suite.Require().Len(groups[1].Orders, 1)
	suite.Equal("012345", groups[1].Orders[0].CustomerOTP)

	suite.Equal(order.BucketCompleted, groups[2].Bucket)
	suite.Require().Len(groups[2].Orders, 1)
	suite.Equal("delivered", groups[2].Orders[0].Status.Code)

	suite.Equal(order.BucketCancelled, groups[3].Bucket)
	suite.NotNil(groups[3].Orders)
	suite.Empty(groups[3].Orders)
}

func (suite *QueryHandlersTestSuite) TestGetCustomerOrders_NoOrders() {
	query, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID().String())
	suite.Require().NoError(err)

	groups, err := queries.NewGetCustomerOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(groups, 4)
	for _, g := range groups {
		suite.Empty(g.Orders, g.Bucket)
	}
}

func (suite *QueryHandlersTestSuite) TestGetAllPartners() {
	ctx := context.Background()
	suite.addPartner("Zoya", true)
	suite.addPartner("Arjun", false)
	suite.addPartner("Bela", true)

	handler := queries.NewGetAllPartnersQueryHandler(suite.db)

	all, err := handler.Handle(ctx, queries.NewGetAllPartnersQuery(nil))
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal([]string{"Arjun", "Bela", "Zoya"}, []string{all[0].Name, all[1].Name, all[2].Name})
	suite.False(all[0].Active)

	yes, no := true, false

	active, err := handler.Handle(ctx, queries.NewGetAllPartnersQuery(&yes))
	suite.Require().NoError(err)
	suite.Require().Len(active, 2)
	suite.Equal([]string{"Bela", "Zoya"}, []string{active[0].Name, active[1].Name})

	inactive, err := handler.Handle(ctx, queries.NewGetAllPartnersQuery(&no))
	suite.Require().NoError(err)
	suite.Require().Len(inactive, 1)
	suite.Equal("Arjun", inactive[0].Name)
	suite.False(inactive[0].Active)
}

func (suite *QueryHandlersTestSuite) TestGetBucketCounts() {
	ctx := context.Background()

	counts, err := queries.NewGetBucketCountsQueryHandler(suite.db).Handle(ctx, queries.NewGetBucketCountsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(counts, 4)
	for _, c := range counts {
		suite.Zero(c.Count, c.Bucket)
	}

	suite.addOrder(kernel.NewUUID(), 0)
	suite.addOrder(kernel.NewUUID(), 0)
	cancelled := suite.addOrder(kernel.NewUUID(), 0)
	suite.setRawStatus(cancelled.ID(), "CANCELLED_BY_SELLER")
	// keyword fallback: delivery wins over failure
	failed := suite.addOrder(kernel.NewUUID(), 0)
	suite.setRawStatus(failed.ID(), "delivery failed")

	counts, err = queries.NewGetBucketCountsQueryHandler(suite.db).Handle(ctx, queries.NewGetBucketCountsQuery())
	suite.Require().NoError(err)
	suite.Equal([]queries.BucketCount{
		{Bucket: order.BucketProcessing, Count: 2},
		{Bucket: order.BucketUnderDelivery, Count: 1},
		{Bucket: order.BucketCompleted, Count: 0},
		{Bucket: order.BucketCancelled, Count: 1},
	}, counts)
}

func (suite *QueryHandlersTestSuite) TestGetDeliveryCode() {
	ctx := context.Background()
	handler := queries.NewGetDeliveryCodeQueryHandler(suite.db)
	p := suite.addPartner("Nisha", true)
	o := suite.addOrder(kernel.NewUUID(), 0)

	query, err := queries.NewGetDeliveryCodeQuery(o.ID().String())
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrInvalidState, "no code before dispatch")

	suite.dispatch(o.ID(), p.ID(), "090909", "303030")

	code, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("090909", code.DeliveryOTP)
	suite.True(code.PartnerID.IsEqual(p.ID()))

	missing, err := queries.NewGetDeliveryCodeQuery(kernel.NewUUID().String())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) addOrder(customerID kernel.UUID, offset time.Duration) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), customerID, order.PaymentMethodCOD, order.PaymentPending, suite.placedAt.Add(offset))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *QueryHandlersTestSuite) addPartner(name string, active bool) *partner.Partner {
	p, err := partner.RestorePartner(kernel.NewUUID(), name, "+91 90000 00000", active)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.partnerRepo.Add(context.Background(), p))
	return p
}

func (suite *QueryHandlersTestSuite) dispatch(orderID, partnerID kernel.UUID, deliveryCode, customerCode string) *order.Order {
	ctx := context.Background()
	o, err := suite.orderRepo.Get(ctx, orderID)
	suite.Require().NoError(err)

	deliveryOTP, err := kernel.NewOTP(deliveryCode)
	suite.Require().NoError(err)
	customerOTP, err := kernel.NewOTP(customerCode)
	suite.Require().NoError(err)

	suite.Require().NoError(o.Dispatch(partnerID, deliveryOTP, customerOTP, suite.placedAt.Add(time.Minute)))
	suite.Require().NoError(suite.orderRepo.Update(ctx, o))
	return o
}

// setRawStatus simulates rows written by older producers.
func (suite *QueryHandlersTestSuite) setRawStatus(orderID kernel.UUID, status string) {
	err := suite.db.Exec("UPDATE orders SET status = ? WHERE id = ?", status, orderID.Bytes()).Error
	suite.Require().NoError(err)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
