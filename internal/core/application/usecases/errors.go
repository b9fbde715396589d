// Package usecases holds what commands and queries share: the failure kinds
// callers of the ordering workflow can observe.
package usecases

import (
	"errors"

	"myfood/internal/core/domain/model/order"
	"myfood/internal/core/domain/model/slot"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrSlotNotFound  = errors.New("slot not found")
	ErrUserNotFound  = errors.New("user not found")

	// ErrAlreadyConfirmed and ErrSlotFull are the domain sentinels themselves,
	// so errors.Is matches whichever layer detected the condition.
	ErrAlreadyConfirmed = order.ErrAlreadyConfirmed
	ErrSlotFull         = slot.ErrSlotFull

	// ErrConfirmationInProgress is returned when another request holds the
	// confirmation lock of the same order.
	ErrConfirmationInProgress = errors.New("confirmation of this order is in progress")
)
