package queries

import (
	"errors"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/guard"
)

var (
	ErrGetAllPartnersQueryIsNotConstructed = errors.New(
		"GetAllPartnersQuery must be created via NewGetAllPartnersQuery constructor",
	)
)

// GetAllPartnersQuery lists the delivery partner registry. A nil active filter
// returns every partner; otherwise only partners whose flag equals *active.
//
// Example:
//
//	available := true
//	query := NewGetAllPartnersQuery(&available)
//	partners, err := handler.Handle(ctx, query)
type GetAllPartnersQuery struct {
	active *bool
	guard  guard.ConstructorGuard
}

func NewGetAllPartnersQuery(active *bool) GetAllPartnersQuery {
	q := GetAllPartnersQuery{guard: guard.NewConstructorGuard()}
	if active != nil {
		value := *active
		q.active = &value
	}
	return q
}

func (q GetAllPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPartnersQueryIsNotConstructed)
}

// ActiveFilter returns the requested flag and whether filtering is requested.
func (q GetAllPartnersQuery) ActiveFilter() (bool, bool) {
	if q.active == nil {
		return false, false
	}
	return *q.active, true
}

type GetAllPartnersQueryResponse struct {
	ID     kernel.UUID
	Name   string
	Phone  string
	Active bool
}
