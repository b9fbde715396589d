package commands

import (
	"context"

	"myfood/internal/core/application/usecases"
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/services"
	"myfood/internal/core/ports"
)

// ConfirmOrderCommandHandler runs the one-shot confirmation of an order into a slot.
//
// Checks, in this order (the first failing one is reported):
//  1. the order exists (usecases.ErrOrderNotFound)
//  2. the order is not confirmed yet (usecases.ErrAlreadyConfirmed)
//  3. the slot exists (usecases.ErrSlotNotFound)
//  4. the slot has room (usecases.ErrSlotFull)
//
// The slot increment and the order stamp are conditional updates committed in one
// transaction, so racing confirmations never overbook a slot nor confirm an order twice.
// With a locker configured, confirmations of the same order are also serialised
// across instances and a contender gets usecases.ErrConfirmationInProgress.
type ConfirmOrderCommandHandler struct {
	uowFactory UoWFactory
	booker     services.SlotBooker
	clock      kernel.Clock
	locker     ports.ConfirmationLocker
	publisher  ports.OrderEventPublisher
}

// NewConfirmOrderCommandHandler creates the handler. locker and publisher may be nil.
func NewConfirmOrderCommandHandler(
	uowFactory UoWFactory,
	booker services.SlotBooker,
	clock kernel.Clock,
	locker ports.ConfirmationLocker,
	publisher ports.OrderEventPublisher,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		booker:     booker,
		clock:      clock,
		locker:     locker,
		publisher:  publisher,
	}
}

func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if h.locker != nil {
		orderID := cmd.OrderID().Int64()
		token, ok, err := h.locker.Acquire(ctx, orderID)
		if err != nil {
			return err
		}
		if !ok {
			return usecases.ErrConfirmationInProgress
		}
		defer func() {
			_ = h.locker.Release(context.WithoutCancel(ctx), orderID, token)
		}()
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
	if err = o.ValidateConfirm(); err != nil {
		return err
	}

	if cmd.SlotID().Validate() != nil {
		return usecases.ErrSlotNotFound
	}
	slotRepo := uow.SlotRepository()
	s, err := slotRepo.Get(ctx, cmd.SlotID())
	if err != nil {
		return notFoundAs(usecases.ErrSlotNotFound, err)
	}

	at := h.clock()
	if err = h.booker.Book(o, s, at); err != nil {
		return err
	}

	if err = slotRepo.Reserve(ctx, s); err != nil {
		return notFoundAs(usecases.ErrSlotNotFound, err)
	}
	if err = orderRepo.Confirm(ctx, o); err != nil {
		return notFoundAs(usecases.ErrOrderNotFound, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publish(ctx, h.publisher, orderChanged(ports.OrderConfirmed, o, at))
	return nil
}
