package commands

import (
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand books an order into a pickup slot.
//
// Example:
//
//	cmd, err := NewConfirmOrderCommand(kernel.MustNewID(1), kernel.MustNewID(6))
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // usecases.ErrOrderNotFound, ErrAlreadyConfirmed, ErrSlotNotFound or ErrSlotFull
//	}
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	slotID  kernel.ID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand requires a constructed orderID. A zero slotID is
// accepted and names no slot, so Handle reports it as usecases.ErrSlotNotFound
// once the order checks pass.
func NewConfirmOrderCommand(orderID, slotID kernel.ID) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		slotID: slotID,
		guard:  guard.NewConstructorGuard(),
	}
	if err := cmd.setOrderID(orderID); err != nil {
		return ConfirmOrderCommand{}, err
	}
	return cmd, nil
}

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

func (c ConfirmOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c ConfirmOrderCommand) SlotID() kernel.ID {
	return c.slotID
}

func (c *ConfirmOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
