package commands

import (
	"errors"
	"time"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrConfirmationPairIsIncomplete = errors.New("slotId and actualDate must be given together")
)

// UpdateOrderCommand replaces the whole mutable state of an existing order:
// the completion flag, the owner and the confirmation (slot and instant).
// Slot occupancy is not touched by a replacement.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.ID
	maked      bool
	userID     *kernel.ID
	slotID     *kernel.ID
	actualDate *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates the replacement. slotID and actualDate are
// both nil (unconfirmed) or both set (confirmed).
func NewUpdateOrderCommand(
	orderID kernel.ID,
	maked bool,
	userID *kernel.ID,
	slotID *kernel.ID,
	actualDate *time.Time,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		maked: maked,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setConfirmation(slotID, actualDate),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c UpdateOrderCommand) Maked() bool {
	return c.maked
}

func (c UpdateOrderCommand) UserID() *kernel.ID {
	if c.userID == nil {
		return nil
	}
	id := *c.userID
	return &id
}

func (c UpdateOrderCommand) SlotID() *kernel.ID {
	if c.slotID == nil {
		return nil
	}
	id := *c.slotID
	return &id
}

func (c UpdateOrderCommand) ActualDate() *time.Time {
	if c.actualDate == nil {
		return nil
	}
	at := *c.actualDate
	return &at
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setUserID(userID *kernel.ID) error {
	if userID == nil {
		return nil
	}
	if err := userID.Validate(); err != nil {
		return err
	}
	id := *userID
	c.userID = &id
	return nil
}

func (c *UpdateOrderCommand) setConfirmation(slotID *kernel.ID, actualDate *time.Time) error {
	if (slotID == nil) != (actualDate == nil) {
		return ErrConfirmationPairIsIncomplete
	}
	if slotID == nil {
		return nil
	}
	if err := slotID.Validate(); err != nil {
		return err
	}
	if actualDate.IsZero() {
		return ErrConfirmationPairIsIncomplete
	}
	id, at := *slotID, *actualDate
	c.slotID, c.actualDate = &id, &at
	return nil
}
