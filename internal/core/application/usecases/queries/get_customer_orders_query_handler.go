package queries

import (
	"context"
	"time"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle buckets every order of the customer. A customer without orders gets
// four empty groups rather than an error.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]CustomerOrderGroup, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	byBucket := make(map[order.Bucket][]CustomerOrderItem, len(order.Buckets()))

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			payment_method,
			payment_status,
			placed_at,
			COALESCE(customer_otp, '')
		FROM orders
		WHERE customer_id = ?
		ORDER BY placed_at DESC, id
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item        CustomerOrderItem
			id          uuid.UUID
			status      string
			placedAt    time.Time
			customerOTP string
		)

		err = rows.Scan(
			&id,
			&status,
			&item.PaymentMethod,
			&item.PaymentStatus,
			&placedAt,
			&customerOTP,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = orderID
		item.PlacedAt = placedAt
		item.Status = describeStatus(status)
		if item.Status.Bucket == order.BucketUnderDelivery {
			item.CustomerOTP = customerOTP
		}

		byBucket[item.Status.Bucket] = append(byBucket[item.Status.Bucket], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	groups := make([]CustomerOrderGroup, 0, len(order.Buckets()))
	for _, b := range order.Buckets() {
		orders := byBucket[b]
		if orders == nil {
			orders = make([]CustomerOrderItem, 0)
		}
		groups = append(groups, CustomerOrderGroup{Bucket: b, Orders: orders})
	}

	return groups, nil
}
