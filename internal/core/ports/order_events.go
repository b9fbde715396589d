package ports

import (
	"context"
	"time"
)

// OrderEventType names a state change of an order.
type OrderEventType string

const (
	OrderCreated   OrderEventType = "order.created"
	OrderUpdated   OrderEventType = "order.updated"
	OrderDeleted   OrderEventType = "order.deleted"
	OrderMade      OrderEventType = "order.made"
	OrderConfirmed OrderEventType = "order.confirmed"
)

// OrderChangedEvent is published after a command committed a change to an order.
type OrderChangedEvent struct {
	Type       OrderEventType `json:"type"`
	OrderID    int64          `json:"orderId"`
	UserID     *int64         `json:"userId,omitempty"`
	SlotID     *int64         `json:"slotId,omitempty"`
	Maked      bool           `json:"maked"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// OrderEventPublisher delivers order-changed events to other services.
// Publishing happens after commit; a failure is reported but never undoes the change.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderChangedEvent) error
}

// ConfirmationLocker serialises confirmations of the same order across instances.
type ConfirmationLocker interface {
	// Acquire takes the lock for the order and returns the owner token.
	// It returns ok == false with a nil error when another request holds the lock.
	Acquire(ctx context.Context, orderID int64) (token string, ok bool, err error)

	// Release frees the lock if it is still owned by token.
	Release(ctx context.Context, orderID int64, token string) error
}
