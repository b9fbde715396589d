package commands

import (
	"context"

	"myfood/internal/core/application/usecases"
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/order"
	"myfood/internal/core/ports"
)

// UpdateOrderCommandHandler overwrites an existing order.
// A referenced user or slot must exist; neither is modified.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
	publisher  ports.OrderEventPublisher
}

func NewUpdateOrderCommandHandler(
	uowFactory UoWFactory,
	clock kernel.Clock,
	publisher ports.OrderEventPublisher,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		publisher:  publisher,
	}
}

// Handle loads the order, checks the references and stores the replacement.
// Returns usecases.ErrOrderNotFound, usecases.ErrUserNotFound or
// usecases.ErrSlotNotFound, checked in that order.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	if userID := cmd.UserID(); userID != nil {
		if _, err = uow.UserRepository().Get(ctx, *userID); err != nil {
			return notFoundAs(usecases.ErrUserNotFound, err)
		}
	}

	var confirmation *order.Confirmation
	if slotID := cmd.SlotID(); slotID != nil {
		if _, err = uow.SlotRepository().Get(ctx, *slotID); err != nil {
			return notFoundAs(usecases.ErrSlotNotFound, err)
		}
		c, confErr := order.NewConfirmation(*slotID, *cmd.ActualDate())
		if confErr != nil {
			return confErr
		}
		confirmation = &c
	}

	if err = o.Replace(cmd.Maked(), cmd.UserID(), confirmation); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return notFoundAs(usecases.ErrOrderNotFound, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publish(ctx, h.publisher, orderChanged(ports.OrderUpdated, o, h.clock()))
	return nil
}
