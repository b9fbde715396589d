package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction an ordering command runs in. Repositories
// obtained from it after Begin share that transaction, so a slot reservation
// and the order confirmation commit or roll back together.
type UnitOfWork interface {
	// Begin opens the transaction. Calling it twice keeps the first one.
	Begin(ctx context.Context) error

	// Commit fails when no transaction is open.
	Commit(ctx context.Context) error

	// Rollback discards the open transaction. It fails when none is open,
	// which callers deferring it after Commit ignore.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	SlotRepository() SlotRepository
	UserRepository() UserRepository
	MenuRepository() MenuRepository
}
