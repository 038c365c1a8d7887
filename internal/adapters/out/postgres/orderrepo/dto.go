// Package orderrepo persists order aggregates with GORM. An order is stored as one
// row in "orders" plus its append-only status history in "order_status_timeline".
package orderrepo

import (
	"time"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row shape of an order. Status is stored as its snake_case code
// so that rows written by older producers remain readable.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status              string     `gorm:"type:varchar(64);not null;index"`
	DeliveryOTP         string     `gorm:"type:varchar(6)"`
	CustomerOTP         string     `gorm:"type:varchar(6)"`
	DeliveryPartnerID   *uuid.UUID `gorm:"type:uuid;index"`
	PaymentMethod       string     `gorm:"type:varchar(16);not null"`
	PaymentStatus       string     `gorm:"type:varchar(16);not null"`
	DeliveryCompletedAt *time.Time `gorm:"type:timestamptz"`
	PlacedAt            time.Time  `gorm:"type:timestamptz;not null;index"`
	Version             int        `gorm:"not null;default:0"`

	Timeline []TimelineEntryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// TimelineEntryDTO is one status history row. Seq is the zero-based position in
// the timeline and is unique per order.
type TimelineEntryDTO struct {
	ID      uint      `gorm:"primaryKey;autoIncrement"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_timeline_order_seq"`
	Seq     int       `gorm:"not null;uniqueIndex:idx_timeline_order_seq"`
	Status  string    `gorm:"type:varchar(64);not null"`
	At      time.Time `gorm:"type:timestamptz;not null"`
}

func (TimelineEntryDTO) TableName() string {
	return "order_status_timeline"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := aggregate.DeliveryPartner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	dto := OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		Status:              aggregate.Status().String(),
		DeliveryOTP:         aggregate.DeliveryOTP().String(),
		CustomerOTP:         aggregate.CustomerOTP().String(),
		DeliveryPartnerID:   partnerID,
		PaymentMethod:       aggregate.PaymentMethod().String(),
		PaymentStatus:       aggregate.PaymentStatus().String(),
		DeliveryCompletedAt: aggregate.DeliveryCompletedAt(),
		Version:             aggregate.Version(),
	}

	timeline := aggregate.Timeline()
	dto.Timeline = make([]TimelineEntryDTO, 0, len(timeline))
	for i, entry := range timeline {
		dto.Timeline = append(dto.Timeline, TimelineEntryDTO{
			OrderID: dto.ID,
			Seq:     i,
			Status:  entry.Status().String(),
			At:      entry.At(),
		})
	}
	if len(timeline) > 0 {
		dto.PlacedAt = timeline[0].At()
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.DeliveryPartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.DeliveryPartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	deliveryOTP, err := otpFromColumn(dto.DeliveryOTP)
	if err != nil {
		return nil, err
	}
	customerOTP, err := otpFromColumn(dto.CustomerOTP)
	if err != nil {
		return nil, err
	}

	timeline := make([]order.TimelineEntry, 0, len(dto.Timeline))
	for _, entry := range dto.Timeline {
		entryStatus, statusErr := order.ParseStatus(entry.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		timeline = append(timeline, order.NewTimelineEntry(entryStatus, entry.At))
	}

	return order.RestoreOrder(order.State{
		ID:                  id,
		CustomerID:          customerID,
		Status:              status,
		Timeline:            timeline,
		DeliveryOTP:         deliveryOTP,
		CustomerOTP:         customerOTP,
		DeliveryPartnerID:   partnerID,
		PaymentMethod:       order.PaymentMethod(dto.PaymentMethod),
		PaymentStatus:       order.PaymentStatus(dto.PaymentStatus),
		DeliveryCompletedAt: dto.DeliveryCompletedAt,
		Version:             dto.Version,
	})
}

// otpFromColumn maps the empty column to the zero OTP.
func otpFromColumn(raw string) (kernel.OTP, error) {
	if raw == "" {
		return kernel.OTP{}, nil
	}
	return kernel.NewOTP(raw)
}
