package commands

import (
	"context"

	"myfood/internal/core/application/usecases"
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/ports"
)

// DeleteOrderCommandHandler removes an order. Slot occupancy taken by a
// confirmed order is not given back.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	publisher  ports.OrderEventPublisher
}

func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	publisher ports.OrderEventPublisher,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		publisher:  publisher,
	}
}

// Handle returns usecases.ErrOrderNotFound when there is nothing to delete.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return notFoundAs(usecases.ErrOrderNotFound, err)
	}

	if err = orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return notFoundAs(usecases.ErrOrderNotFound, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publish(ctx, h.publisher, orderChanged(ports.OrderDeleted, o, h.clock()))
	return nil
}
