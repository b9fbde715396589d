package order

import (
	"errors"
	"time"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/errs"
	"myfood/internal/pkg/guard"
)

// ErrConfirmationIsNotConstructed is returned for a zero value Confirmation.
var ErrConfirmationIsNotConstructed = errors.New("Confirmation must be created via NewConfirmation constructor")

// Confirmation is the Confirmed state of an order: the slot it was booked into
// and the instant of booking. An order without a Confirmation is unconfirmed.
type Confirmation struct {
	slotID kernel.ID
	at     time.Time
	guard  guard.ConstructorGuard
}

// NewConfirmation pairs a slot with the booking instant. Both are required.
func NewConfirmation(slotID kernel.ID, at time.Time) (Confirmation, error) {
	if err := slotID.Validate(); err != nil {
		return Confirmation{}, err
	}
	if at.IsZero() {
		return Confirmation{}, errs.NewValueIsRequiredError("actualDate")
	}
	return Confirmation{
		slotID: slotID,
		at:     at,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// SlotID returns the slot the order was confirmed into.
func (c Confirmation) SlotID() kernel.ID {
	return c.slotID
}

// At returns the confirmation instant.
func (c Confirmation) At() time.Time {
	return c.at
}

// Validate returns ErrConfirmationIsNotConstructed for a zero value.
func (c Confirmation) Validate() error {
	return c.guard.Validate(ErrConfirmationIsNotConstructed)
}
