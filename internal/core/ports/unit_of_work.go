package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary over the order and partner
// repositories. Events raised by orders saved through it are published once
// Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// PartnerRepository returns a repository bound to the current transaction,
	// or to the plain connection when none is active.
	PartnerRepository() PartnerRepository

	// OrderRepository returns a repository bound to the current transaction,
	// or to the plain connection when none is active.
	OrderRepository() OrderRepository
}
