package commands

import (
	"context"

	"myfood/internal/core/application/usecases"
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/order"
	"myfood/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// An owned order is only created when its user exists.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock, publisher)
//	cmd, _ := NewCreateOrderCommand(nil)
//
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
	publisher  ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	clock kernel.Clock,
	publisher ports.OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		publisher:  publisher,
	}
}

// Handle creates the order and returns the identity assigned by the store.
// Returns usecases.ErrUserNotFound when the owner does not exist.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if userID := cmd.UserID(); userID != nil {
		if _, err := uow.UserRepository().Get(ctx, *userID); err != nil {
			return kernel.ID{}, notFoundAs(usecases.ErrUserNotFound, err)
		}
	}

	now := h.clock()
	o, err := order.NewOrder(cmd.UserID(), now)
	if err != nil {
		return kernel.ID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	publish(ctx, h.publisher, orderChanged(ports.OrderCreated, o, now))
	return o.ID(), nil
}
