package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order snapshot or errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID()

	var (
		resp       GetOrderQueryResponse
		id         uuid.UUID
		customerID uuid.UUID
		partnerID  *uuid.UUID
		status     string
		code       *string
	)

	row := db.Raw(`
		SELECT
			id,
			customer_id,
			status,
			delivery_partner_id,
			payment_method,
			payment_status,
			placed_at,
			delivery_completed_at,
			version,
			delivery_otp
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(
		&id,
		&customerID,
		&status,
		&partnerID,
		&resp.PaymentMethod,
		&resp.PaymentStatus,
		&resp.PlacedAt,
		&resp.DeliveryCompletedAt,
		&resp.Version,
		&code,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if partnerID != nil {
		pID, pErr := kernel.UUIDFromBytes((*partnerID)[:])
		if pErr != nil {
			return GetOrderQueryResponse{}, pErr
		}
		resp.DeliveryPartnerID = &pID
	}
	resp.Status = describeStatus(status)
	if code != nil {
		resp.DeliveryOTP = *code
	}

	resp.Timeline, err = h.timeline(ctx, id)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) timeline(ctx context.Context, orderID uuid.UUID) ([]TimelineItem, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			at
		FROM order_status_timeline
		WHERE order_id = ?
		ORDER BY seq
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]TimelineItem, 0)
	for rows.Next() {
		var (
			status string
			at     time.Time
		)
		if err = rows.Scan(&status, &at); err != nil {
			return nil, err
		}
		items = append(items, TimelineItem{Status: describeStatus(status), At: at})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
