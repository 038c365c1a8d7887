// Package http is the inbound echo adapter. Server implements the generated
// servers.ServerInterface on top of the command and query handlers.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"freshcart/internal/core/application/usecases/commands"
	"freshcart/internal/core/application/usecases/queries"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"
	"freshcart/internal/generated/servers"
	"freshcart/internal/pkg/errs"
	"freshcart/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	DispatchOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DispatchOrderCommand) error
	}
	CompleteDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteDeliveryCommand) error
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}
	CreatePartnerHandler interface {
		Handle(ctx context.Context, cmd commands.CreatePartnerCommand) error
	}
	SetPartnerAvailabilityHandler interface {
		Handle(ctx context.Context, cmd commands.SetPartnerAvailabilityCommand) error
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	GetCustomerOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetCustomerOrdersQuery) ([]queries.CustomerOrderGroup, error)
	}
	GetDeliveryCodeHandler interface {
		Handle(ctx context.Context, query queries.GetDeliveryCodeQuery) (queries.GetDeliveryCodeQueryResponse, error)
	}
	GetAllPartnersHandler interface {
		Handle(ctx context.Context, query queries.GetAllPartnersQuery) ([]queries.GetAllPartnersQueryResponse, error)
	}
)

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	CreateOrder            CreateOrderHandler
	DispatchOrder          DispatchOrderHandler
	CompleteDelivery       CompleteDeliveryHandler
	ChangeOrderStatus      ChangeOrderStatusHandler
	CreatePartner          CreatePartnerHandler
	SetPartnerAvailability SetPartnerAvailabilityHandler

	GetOrder          GetOrderHandler
	GetCustomerOrders GetCustomerOrdersHandler
	GetDeliveryCode   GetDeliveryCodeHandler
	GetAllPartners    GetAllPartnersHandler
}

// Server implements the ServerInterface for handling HTTP requests.
type Server struct {
	h       Handlers
	metrics *metrics.Metrics
	logger  *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(h Handlers, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		h:       h,
		metrics: m,
		logger:  logger.With("component", "http_server"),
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	customerID, err := toKernelUUID(body.CustomerId, "customerId")
	if err != nil {
		return s.fail(ctx, err)
	}

	paymentStatus := ""
	if body.PaymentStatus != nil {
		paymentStatus = string(*body.PaymentStatus)
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, string(body.PaymentMethod), paymentStatus)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	snapshot, err := s.readOrder(ctx.Request().Context(), cmd.OrderID())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, snapshot)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := toKernelUUID(orderID, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}

	snapshot, err := s.readOrder(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// ChangeOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.StatusChange
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderID, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	s.metrics.ObserveStatusChange(cmd.Status())

	snapshot, err := s.readOrder(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// DispatchOrder handles POST /api/v1/orders/{orderId}/dispatch. The response
// carries the delivery code for the partner's screen; the customer code is
// only ever shown in the customer's own order list.
func (s *Server) DispatchOrder(ctx echo.Context, orderID servers.OrderId) error {
	const operation = "dispatch"

	var body servers.DispatchRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderID, "orderId")
	if err != nil {
		return s.handshakeFailed(ctx, operation, err)
	}
	partnerID, err := toKernelUUID(body.PartnerId, "partnerId")
	if err != nil {
		return s.handshakeFailed(ctx, operation, err)
	}

	cmd, err := commands.NewDispatchOrderCommand(id, partnerID)
	if err != nil {
		return s.handshakeFailed(ctx, operation, err)
	}

	if err = s.h.DispatchOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.handshakeFailed(ctx, operation, err)
	}
	s.metrics.ObserveDispatch()

	// Snapshot and code come from one row. A completion that lands before
	// this read leaves the code empty but the dispatch still succeeded.
	query, err := queries.NewGetOrderQuery(id.String())
	if err != nil {
		return s.fail(ctx, err)
	}
	snapshot, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DispatchResult{
		Order:       toOrder(snapshot),
		DeliveryOtp: snapshot.DeliveryOTP,
	})
}

// GetDeliveryCode handles GET /api/v1/orders/{orderId}/delivery/code.
func (s *Server) GetDeliveryCode(ctx echo.Context, orderID servers.OrderId) error {
	query, err := queries.NewGetDeliveryCodeQuery(orderID.String())
	if err != nil {
		return s.fail(ctx, err)
	}

	code, err := s.h.GetDeliveryCode.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DeliveryCode{
		OrderId:     code.OrderID.Bytes(),
		PartnerId:   code.PartnerID.Bytes(),
		DeliveryOtp: code.DeliveryOTP,
	})
}

// CompleteDelivery handles PUT /api/v1/orders/{orderId}/delivery/complete.
func (s *Server) CompleteDelivery(ctx echo.Context, orderID servers.OrderId) error {
	const operation = "complete_delivery"

	var body servers.CompleteDeliveryRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderID, "orderId")
	if err != nil {
		return s.handshakeFailed(ctx, operation, err)
	}

	submitted := ""
	if body.SubmittedCode != nil {
		submitted = *body.SubmittedCode
	}

	cmd, err := commands.NewCompleteDeliveryCommand(id, submitted)
	if err != nil {
		return s.handshakeFailed(ctx, operation, err)
	}

	if err = s.h.CompleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		if errs.Kind(err) == errs.KindValidation {
			s.metrics.ObserveOTPRejection()
		}
		return s.handshakeFailed(ctx, operation, err)
	}
	s.metrics.ObserveDelivery()

	snapshot, err := s.readOrder(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// GetCustomerOrders handles GET /api/v1/customers/{customerId}/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context, customerID openapi_types.UUID) error {
	query, err := queries.NewGetCustomerOrdersQuery(customerID.String())
	if err != nil {
		return s.fail(ctx, err)
	}

	groups, err := s.h.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.CustomerOrders{
		CustomerId: customerID,
		Buckets:    toCustomerOrderGroups(groups),
	})
}

// GetPartners handles GET /api/v1/partners.
func (s *Server) GetPartners(ctx echo.Context, params servers.GetPartnersParams) error {
	partners, err := s.h.GetAllPartners.Handle(ctx.Request().Context(), queries.NewGetAllPartnersQuery(params.Active))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Partner, len(partners))
	for i, p := range partners {
		response[i] = servers.Partner{
			Id:     p.ID.Bytes(),
			Name:   p.Name,
			Phone:  p.Phone,
			Active: p.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePartner handles POST /api/v1/partners.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var body servers.NewPartner
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreatePartnerCommand(body.Name, body.Phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CreatePartner.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Partner{
		Id:     cmd.PartnerID().Bytes(),
		Name:   cmd.Name(),
		Phone:  cmd.Phone(),
		Active: true,
	})
}

// SetPartnerAvailability handles PUT /api/v1/partners/{partnerId}/active.
func (s *Server) SetPartnerAvailability(ctx echo.Context, partnerID openapi_types.UUID) error {
	var body servers.PartnerAvailability
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(partnerID, "partnerId")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetPartnerAvailabilityCommand(id, body.Active)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.SetPartnerAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClassifyStatus handles GET /api/v1/statuses/classify. It never fails: an
// unknown or empty status is reported in the processing bucket.
func (s *Server) ClassifyStatus(ctx echo.Context, params servers.ClassifyStatusParams) error {
	input := ""
	if params.Status != nil {
		input = *params.Status
	}

	response := servers.Classification{
		Input:  input,
		Bucket: servers.Bucket(order.Classify(input)),
	}
	if status, err := order.ParseStatus(input); err == nil {
		response.Status = &servers.Status{
			Code:   status.String(),
			Label:  status.Label(),
			Bucket: servers.Bucket(status.Bucket()),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) readOrder(ctx context.Context, id kernel.UUID) (servers.Order, error) {
	query, err := queries.NewGetOrderQuery(id.String())
	if err != nil {
		return servers.Order{}, err
	}

	snapshot, err := s.h.GetOrder.Handle(ctx, query)
	if err != nil {
		return servers.Order{}, err
	}

	return toOrder(snapshot), nil
}

func (s *Server) handshakeFailed(ctx echo.Context, operation string, err error) error {
	s.metrics.ObserveHandshakeFailure(operation, errs.Kind(err))
	return s.fail(ctx, err)
}

func toKernelUUID(id openapi_types.UUID, param string) (kernel.UUID, error) {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return converted, nil
}
