package slot

import (
	"errors"
	"fmt"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/errs"
)

var (
	// ErrSlotIsNotConstructed is returned when a Slot was not created through NewSlot or RestoreSlot.
	ErrSlotIsNotConstructed = errors.New("Slot must be created via NewSlot constructor")

	// ErrSlotFull is returned when a reservation is attempted on a slot whose
	// occupancy has reached its limit.
	ErrSlotFull = errors.New("too many orders for this slot")

	// ErrIDAlreadyAssigned is returned when AssignID is called on a persisted slot.
	ErrIDAlreadyAssigned = errors.New("slot identity is already assigned")
)

// Slot represents a pickup window with a fixed number of places.
//
// Slot follows these invariants:
//   - limit is never negative
//   - 0 <= actual <= limit at all times
//   - actual changes only through Reserve
type Slot struct {
	// id is the store-assigned identity (zero until persisted)
	id kernel.ID
	// limit is the maximum number of orders confirmed into the slot
	limit int
	// actual is the number of orders confirmed so far
	actual int
	// isConstructed ensures the slot was created via a constructor
	isConstructed bool
}

// NewSlot creates an empty slot with the given capacity.
//
// Example:
//
//	s, err := slot.NewSlot(10)
//	if err != nil {
//	    // limit was negative
//	}
func NewSlot(limit int) (*Slot, error) {
	s := &Slot{isConstructed: true}
	if err := s.setLimit(limit); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreSlot rebuilds a persisted slot. Used by repositories only.
func RestoreSlot(id kernel.ID, limit int, actual int) (*Slot, error) {
	s := &Slot{isConstructed: true}
	if err := errors.Join(
		id.Validate(),
		s.setLimit(limit),
	); err != nil {
		return nil, err
	}
	if actual < 0 || actual > limit {
		return nil, errs.NewValueIsOutOfRangeError("actual", actual, 0, limit)
	}
	s.id = id
	s.actual = actual
	return s, nil
}

// Validate ensures the Slot was built through a constructor.
func (s *Slot) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSlotIsNotConstructed
	}
	return nil
}

// AssignID sets the identity handed out by the store on first insert.
func (s *Slot) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if s.id.Validate() == nil {
		return ErrIDAlreadyAssigned
	}
	s.id = id
	return nil
}

// ID returns the slot identity.
func (s *Slot) ID() kernel.ID {
	return s.id
}

// Limit returns the slot capacity.
func (s *Slot) Limit() int {
	return s.limit
}

// Actual returns the current occupancy.
func (s *Slot) Actual() int {
	return s.actual
}

// HasRoom reports whether one more order fits.
func (s *Slot) HasRoom() bool {
	return s.actual < s.limit
}

// Reserve takes one place in the slot.
// Returns ErrSlotFull, leaving the slot untouched, when actual >= limit.
func (s *Slot) Reserve() error {
	if !s.HasRoom() {
		return ErrSlotFull
	}
	s.actual++
	return nil
}

func (s *Slot) setLimit(limit int) error {
	if limit < 0 {
		return errs.NewValueIsInvalidErrorWithCause("limit is invalid", fmt.Errorf("%d is negative", limit))
	}
	s.limit = limit
	return nil
}
