package commands

import (
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/guard"
)

var ErrMarkOrderAsMadeCommandIsNotConstructed = errors.New(
	"MarkOrderAsMadeCommand must be created via NewMarkOrderAsMadeCommand constructor",
)

// MarkOrderAsMadeCommand is issued by the kitchen when an order is ready.
type MarkOrderAsMadeCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewMarkOrderAsMadeCommand(orderID kernel.ID) (MarkOrderAsMadeCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkOrderAsMadeCommand{}, err
	}
	return MarkOrderAsMadeCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOrderAsMadeCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderAsMadeCommandIsNotConstructed)
}

func (c MarkOrderAsMadeCommand) OrderID() kernel.ID {
	return c.orderID
}
