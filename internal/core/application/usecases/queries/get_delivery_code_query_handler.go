package queries

import (
	"context"
	"database/sql"
	"errors"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetDeliveryCodeQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryCodeQueryHandler(db *gorm.DB) GetDeliveryCodeQueryHandler {
	return GetDeliveryCodeQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown order and
// errs.InvalidStateError when no code is armed, i.e. before dispatch or after
// the handshake has ended.
func (h GetDeliveryCodeQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryCodeQuery,
) (GetDeliveryCodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryCodeQueryResponse{}, err
	}

	var (
		partnerID   *uuid.UUID
		deliveryOTP sql.NullString
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			delivery_partner_id,
			delivery_otp
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(&partnerID, &deliveryOTP)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetDeliveryCodeQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetDeliveryCodeQueryResponse{}, err
	}

	if partnerID == nil || !deliveryOTP.Valid || deliveryOTP.String == "" {
		return GetDeliveryCodeQueryResponse{}, errs.NewInvalidStateError("order is not out for delivery")
	}

	pID, err := kernel.UUIDFromBytes(partnerID[:])
	if err != nil {
		return GetDeliveryCodeQueryResponse{}, err
	}

	return GetDeliveryCodeQueryResponse{
		OrderID:     query.OrderID(),
		PartnerID:   pID,
		DeliveryOTP: deliveryOTP.String,
	}, nil
}
