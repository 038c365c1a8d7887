package cmd

import (
	"log/slog"

	"freshcart/internal/adapters/in/http"
	"freshcart/internal/adapters/out/clock"
	"freshcart/internal/adapters/out/events"
	"freshcart/internal/adapters/out/otpgen"
	"freshcart/internal/adapters/out/postgres"
	"freshcart/internal/core/application/usecases/commands"
	"freshcart/internal/core/application/usecases/queries"
	"freshcart/internal/core/domain/services"
	"freshcart/internal/core/ports"
	"freshcart/internal/jobs"
	"freshcart/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      services.Clock
	handshake  *services.DeliveryHandshake
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) CompositionRoot {
	systemClock := clock.NewSystemClock()
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		clock:      systemClock,
		handshake:  services.NewDeliveryHandshake(otpgen.NewHOTPGenerator(), systemClock),
		metrics:    m,
		logger:     logger,
	}
}

// NewEventPublisher returns the RabbitMQ publisher when AMQPURL is set and a
// log-only publisher otherwise. The returned close func is never nil.
func NewEventPublisher(configs Config, logger *slog.Logger) (ports.EventPublisher, func() error, error) {
	if configs.AMQPURL == "" {
		return events.NewLogPublisher(logger), func() error { return nil }, nil
	}

	publisher, err := events.DialAMQPPublisher(configs.AMQPURL, configs.AMQPExchange, logger)
	if err != nil {
		return nil, nil, err
	}
	return publisher, publisher.Close, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) partnerUoWFactory() commands.PartnerUoWFactory {
	return FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchOrderCommandHandler(f, c.handshake)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.orderUoWFactory(), c.handshake)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreatePartnerCommandHandler() commands.CreatePartnerCommandHandler {
	return commands.NewCreatePartnerCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateSetPartnerAvailabilityCommandHandler() commands.SetPartnerAvailabilityCommandHandler {
	return commands.NewSetPartnerAvailabilityCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryCodeQueryHandler() queries.GetDeliveryCodeQueryHandler {
	return queries.NewGetDeliveryCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllPartnersQueryHandler() queries.GetAllPartnersQueryHandler {
	return queries.NewGetAllPartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBucketCountsQueryHandler() queries.GetBucketCountsQueryHandler {
	return queries.NewGetBucketCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		DispatchOrder:          c.CreateDispatchOrderCommandHandler(),
		CompleteDelivery:       c.CreateCompleteDeliveryCommandHandler(),
		ChangeOrderStatus:      c.CreateChangeOrderStatusCommandHandler(),
		CreatePartner:          c.CreateCreatePartnerCommandHandler(),
		SetPartnerAvailability: c.CreateSetPartnerAvailabilityCommandHandler(),
		GetOrder:               c.CreateGetOrderQueryHandler(),
		GetCustomerOrders:      c.CreateGetCustomerOrdersQueryHandler(),
		GetDeliveryCode:        c.CreateGetDeliveryCodeQueryHandler(),
		GetAllPartners:         c.CreateGetAllPartnersQueryHandler(),
	}, c.metrics, c.logger)
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewBucketMetricsJob(c.CreateGetBucketCountsQueryHandler(), c.metrics, c.configs.MetricsCron, c.logger),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
