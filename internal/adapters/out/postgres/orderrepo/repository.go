package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"
	"freshcart/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row and its timeline.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order only if the stored version still matches the one the
// aggregate was loaded with, bumping it by one. Timeline entries beyond the
// stored length are appended.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	// A map is used so that cleared OTPs and a nil partner are written too.
	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":                dto.Status,
			"delivery_otp":          dto.DeliveryOTP,
			"customer_otp":          dto.CustomerOTP,
			"delivery_partner_id":   dto.DeliveryPartnerID,
			"payment_method":        dto.PaymentMethod,
			"payment_status":        dto.PaymentStatus,
			"delivery_completed_at": dto.DeliveryCompletedAt,
			"version":               dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate)
	}

	var stored int64
	if err := db.Model(&TimelineEntryDTO{}).Where("order_id = ?", dto.ID).Count(&stored).Error; err != nil {
		return err
	}
	if int(stored) > len(dto.Timeline) {
		return fmt.Errorf("order %s: stored timeline has %d entries, aggregate has %d",
			aggregate.ID(), stored, len(dto.Timeline))
	}
	if appended := dto.Timeline[stored:]; len(appended) > 0 {
		if err := db.Create(&appended).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) missingOrStale(ctx context.Context, aggregate *order.Order) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", aggregate.ID().Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	return errs.NewVersionIsInvalidErrorWithCause(
		"order",
		fmt.Errorf("order %s was modified after version %d was loaded", aggregate.ID(), aggregate.Version()),
	)
}

// Get loads an order with its timeline in insertion order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Timeline", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
