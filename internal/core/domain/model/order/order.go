package order

import (
	"errors"
	"time"

	"myfood/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrAlreadyConfirmed is returned when confirming an order that already holds a slot.
	ErrAlreadyConfirmed = errors.New("order is confirmed previously")

	// ErrIDAlreadyAssigned is returned when AssignID is called on a persisted order.
	ErrIDAlreadyAssigned = errors.New("order identity is already assigned")
)

// Order represents a customer order. It is the aggregate root that manages the order
// lifecycle from creation through pickup confirmation and kitchen completion.
//
// Order follows these invariants:
//   - The identity is assigned once, by the store
//   - The owner, if any, is a valid user identity
//   - confirmation is nil (unconfirmed) or a valid Confirmation (confirmed)
//   - Once confirmed, the order is never unconfirmed by Confirm or MarkAsMade
//
// Relations are held as identities; the owning user and the slot are separate aggregates.
type Order struct {
	// id is the store-assigned identity (zero until persisted)
	id kernel.ID
	// userID is the owner (nil for standalone orders)
	userID *kernel.ID
	// maked is set by the kitchen when the order is ready
	maked bool
	// confirmation is nil until the order is booked into a slot
	confirmation *Confirmation
	// createdAt orders a user's history, newest first
	createdAt time.Time
	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates an unconfirmed, not-made order.
//
// Parameters:
//   - userID: owner of the order, nil for a standalone order
//   - createdAt: creation instant
//
// Example:
//
//	owner := kernel.MustNewID(7)
//	o, err := order.NewOrder(&owner, clock())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(userID *kernel.ID, createdAt time.Time) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}
	if err := o.setUser(userID); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreOrder rebuilds a persisted order. Used by repositories only.
func RestoreOrder(
	id kernel.ID,
	userID *kernel.ID,
	maked bool,
	confirmation *Confirmation,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		maked:         maked,
		createdAt:     createdAt,
		isConstructed: true,
	}
	if err := errors.Join(
		id.Validate(),
		o.setUser(userID),
		o.setConfirmation(confirmation),
	); err != nil {
		return nil, err
	}
	o.id = id
	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identities.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// AssignID sets the identity handed out by the store on first insert.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.id.Validate() == nil {
		return ErrIDAlreadyAssigned
	}
	o.id = id
	return nil
}

// ID returns the order's identity.
func (o *Order) ID() kernel.ID {
	return o.id
}

// User returns the owner's identity, nil for standalone orders.
func (o *Order) User() *kernel.ID {
	if o.userID == nil {
		return nil
	}
	id := *o.userID
	return &id
}

// IsMade reports whether the kitchen has finished the order.
func (o *Order) IsMade() bool {
	return o.maked
}

// CreatedAt returns the creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsConfirmed reports whether the order has been booked into a slot.
func (o *Order) IsConfirmed() bool {
	return o.confirmation != nil
}

// Confirmation returns a copy of the confirmation, nil while unconfirmed.
func (o *Order) Confirmation() *Confirmation {
	if o.confirmation == nil {
		return nil
	}
	c := *o.confirmation
	return &c
}

// Slot returns the slot the order is confirmed into, nil while unconfirmed.
func (o *Order) Slot() *kernel.ID {
	if o.confirmation == nil {
		return nil
	}
	id := o.confirmation.SlotID()
	return &id
}

// ValidateConfirm checks, without side effects, that the order can still be confirmed.
// Returns ErrAlreadyConfirmed otherwise.
func (o *Order) ValidateConfirm() error {
	if o.IsConfirmed() {
		return ErrAlreadyConfirmed
	}
	return nil
}

// Confirm books the order into a slot at the given instant.
//
// This method enforces the following business rules:
//   - The order must not be confirmed yet (one-shot transition)
//   - The slot identity must be valid and the instant non-zero
//
// Capacity is not checked here; the slot aggregate owns it (see services.SlotBooker).
func (o *Order) Confirm(slotID kernel.ID, at time.Time) error {
	if err := o.ValidateConfirm(); err != nil {
		return err
	}
	c, err := NewConfirmation(slotID, at)
	if err != nil {
		return err
	}
	o.confirmation = &c
	return nil
}

// MarkAsMade sets the kitchen completion flag. Marking a made order again is a no-op.
func (o *Order) MarkAsMade() {
	o.maked = true
}

// Replace overwrites every mutable field of the order at once, as a full-record update does.
// The identity and creation instant are kept. A nil confirmation leaves the order unconfirmed.
func (o *Order) Replace(maked bool, userID *kernel.ID, confirmation *Confirmation) error {
	next := *o
	next.maked = maked
	if err := errors.Join(
		next.setUser(userID),
		next.setConfirmation(confirmation),
	); err != nil {
		return err
	}
	*o = next
	return nil
}

func (o *Order) setUser(userID *kernel.ID) error {
	if userID == nil {
		o.userID = nil
		return nil
	}
	if err := userID.Validate(); err != nil {
		return err
	}
	id := *userID
	o.userID = &id
	return nil
}

func (o *Order) setConfirmation(confirmation *Confirmation) error {
	if confirmation == nil {
		o.confirmation = nil
		return nil
	}
	if err := confirmation.Validate(); err != nil {
		return err
	}
	c := *confirmation
	o.confirmation = &c
	return nil
}
