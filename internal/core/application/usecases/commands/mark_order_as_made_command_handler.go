package commands

import (
	"context"

	"myfood/internal/core/application/usecases"
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/ports"
)

// MarkOrderAsMadeCommandHandler sets the completion flag of an order.
// Marking a made order again succeeds and changes nothing.
type MarkOrderAsMadeCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	publisher  ports.OrderEventPublisher
}

func NewMarkOrderAsMadeCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	publisher ports.OrderEventPublisher,
) MarkOrderAsMadeCommandHandler {
	return MarkOrderAsMadeCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		publisher:  publisher,
	}
}

// Handle returns usecases.ErrOrderNotFound for an unknown order.
func (h *MarkOrderAsMadeCommandHandler) Handle(ctx context.Context, cmd MarkOrderAsMadeCommand) error {
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

	if o.IsMade() {
		return nil
	}
	o.MarkAsMade()

	if err = orderRepo.UpdateMade(ctx, o); err != nil {
		return notFoundAs(usecases.ErrOrderNotFound, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publish(ctx, h.publisher, orderChanged(ports.OrderMade, o, h.clock()))
	return nil
}
