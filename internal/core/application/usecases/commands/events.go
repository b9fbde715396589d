package commands

import (
	"context"
	"time"

	"myfood/internal/core/domain/model/order"
	"myfood/internal/core/ports"
)

func orderChanged(eventType ports.OrderEventType, o *order.Order, at time.Time) ports.OrderChangedEvent {
	event := ports.OrderChangedEvent{
		Type:       eventType,
		OrderID:    o.ID().Int64(),
		Maked:      o.IsMade(),
		OccurredAt: at,
	}
	if userID := o.User(); userID != nil {
		raw := userID.Int64()
		event.UserID = &raw
	}
	if slotID := o.Slot(); slotID != nil {
		raw := slotID.Int64()
		event.SlotID = &raw
	}
	return event
}

// publish runs after commit. The publisher reports its own failures; the
// committed change stands either way.
func publish(ctx context.Context, publisher ports.OrderEventPublisher, event ports.OrderChangedEvent) {
	if publisher == nil {
		return
	}
	_ = publisher.Publish(ctx, event)
}
