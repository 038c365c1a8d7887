// Package partnerrepo persists delivery partners with GORM.
package partnerrepo

import (
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

type PartnerDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Phone  string    `gorm:"type:varchar(32);not null"`
	Active bool      `gorm:"not null;index"`
}

func (PartnerDTO) TableName() string {
	return "delivery_partners"
}

func fromDomain(aggregate *partner.Partner) PartnerDTO {
	return PartnerDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Phone:  aggregate.Phone(),
		Active: aggregate.IsActive(),
	}
}

func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return partner.RestorePartner(id, dto.Name, dto.Phone, dto.Active)
}
