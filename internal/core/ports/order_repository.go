// Package ports defines the contracts between the ordering core and its adapters:
// repositories, the unit of work, and outbound event and lock ports.
// These interfaces establish dependency inversion and keep use cases testable.
package ports

import (
	"context"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its identity.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update overwrites an existing order with the aggregate's full state.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateMade writes only the completion flag, leaving a concurrent
	// confirmation of the same row intact.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	UpdateMade(ctx context.Context, aggregate *order.Order) error

	// Confirm persists the confirmation of an order only if the stored order is
	// still unconfirmed. Returns order.ErrAlreadyConfirmed when another
	// transaction confirmed it first.
	Confirm(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order and its line items.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	Delete(ctx context.Context, id kernel.ID) error

	// Get retrieves an order aggregate by its identity.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)
}
