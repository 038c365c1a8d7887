// Package commands contains the write side of the order lifecycle: every
// operation that changes an order or a delivery partner. Commands are
// validated value objects; handlers run them inside a unit of work.
package commands

import (
	"context"

	"freshcart/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// OrderUoW is used by commands that only touch orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PartnerUoW is used by commands that only touch delivery partners.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
	}

	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// UoW spans orders and partners, e.g. for dispatch.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   p, err := uow.PartnerRepository().Get(ctx, partnerID)
	//   // ... mutate and Update
	//
	//   return uow.Commit(ctx)
	UoW interface {
		TxManager
		PartnerRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
