package services

import (
	"time"

	"myfood/internal/core/domain/model/order"
	"myfood/internal/core/domain/model/slot"
)

// SlotBooker is a domain service that confirms an order into a pickup slot.
//
// Business rules, checked in this order:
//   - The order and slot must be valid aggregates
//   - The order must not be confirmed yet (order.ErrAlreadyConfirmed)
//   - The slot must have room (slot.ErrSlotFull)
//
// On success the slot's occupancy grows by exactly one and the order holds the
// slot and the instant. On failure neither aggregate is modified.
//
// Example usage:
//
//	booker := services.NewSlotBooker()
//	if err := booker.Book(o, s, clock()); err != nil {
//	    // order.ErrAlreadyConfirmed or slot.ErrSlotFull
//	}
type SlotBooker struct{}

// NewSlotBooker creates a new SlotBooker instance.
func NewSlotBooker() SlotBooker {
	return SlotBooker{}
}

// Book reserves a place in s and confirms o into it at the given instant.
func (b SlotBooker) Book(o *order.Order, s *slot.Slot, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if err := o.ValidateConfirm(); err != nil {
		return err
	}
	if err := s.ID().Validate(); err != nil {
		return err
	}
	if !s.HasRoom() {
		return slot.ErrSlotFull
	}

	if err := o.Confirm(s.ID(), at); err != nil {
		return err
	}
	// HasRoom was checked above, so Reserve cannot fail here.
	return s.Reserve()
}
