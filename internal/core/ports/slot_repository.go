package ports

import (
	"context"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/slot"
)

// SlotRepository defines the persistence contract for pickup slots.
type SlotRepository interface {
	// Add persists a new slot and assigns its identity.
	Add(ctx context.Context, aggregate *slot.Slot) error

	// Get retrieves a slot by its identity.
	// Returns errs.ObjectNotFoundError if the slot does not exist.
	Get(ctx context.Context, id kernel.ID) (*slot.Slot, error)

	// Reserve atomically takes one place in the stored slot:
	//
	//   UPDATE slots SET actual = actual + 1 WHERE id = ? AND actual < limit_slot
	//
	// Returns slot.ErrSlotFull when no row qualifies because the slot filled up,
	// and errs.ObjectNotFoundError when the slot is gone. The aggregate is
	// refreshed with the stored occupancy on success.
	Reserve(ctx context.Context, aggregate *slot.Slot) error
}
