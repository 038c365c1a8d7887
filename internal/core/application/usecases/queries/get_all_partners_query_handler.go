package queries

import (
	"context"

	"freshcart/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAllPartnersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllPartnersQueryHandler(db *gorm.DB) GetAllPartnersQueryHandler {
	return GetAllPartnersQueryHandler{db: db}
}

// Handle returns the matching partners sorted by name, then id.
func (h GetAllPartnersQueryHandler) Handle(
	ctx context.Context,
	query GetAllPartnersQuery,
) ([]GetAllPartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			name,
			phone,
			active
		FROM delivery_partners`
	args := make([]any, 0, 1)
	if active, ok := query.ActiveFilter(); ok {
		stmt += ` WHERE active = ?`
		args = append(args, active)
	}
	stmt += ` ORDER BY name, id`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := make([]GetAllPartnersQueryResponse, 0)
	for rows.Next() {
		var (
			p  GetAllPartnersQueryResponse
			id uuid.UUID
		)
		if err = rows.Scan(&id, &p.Name, &p.Phone, &p.Active); err != nil {
			return nil, err
		}

		partnerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		p.ID = partnerID
		partners = append(partners, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}
