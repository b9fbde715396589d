package commands

import (
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new, unconfirmed order.
// The order is standalone when no user is given.
//
// Example:
//
//	owner := kernel.MustNewID(7)
//	cmd, err := NewCreateOrderCommand(&owner)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID *kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// A non-nil userID must be a valid identity.
func NewCreateOrderCommand(userID *kernel.ID) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.setUserID(userID); err != nil {
		return CreateOrderCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the owner of the new order, nil for a standalone order.
func (c CreateOrderCommand) UserID() *kernel.ID {
	if c.userID == nil {
		return nil
	}
	id := *c.userID
	return &id
}

func (c *CreateOrderCommand) setUserID(userID *kernel.ID) error {
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
