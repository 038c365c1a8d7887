package ports

import (
	"context"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partners.
type PartnerRepository interface {
	Add(ctx context.Context, aggregate *partner.Partner) error
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get returns errs.ObjectNotFoundError when no partner has the given id.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)
}
