// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The confirmation state is stored as the pair (slot_id, actual_date); the check
// constraint keeps both null or both set.
type OrderDTO struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	Maked      bool       `gorm:"not null;default:false"`
	ActualDate *time.Time `gorm:"type:timestamptz;check:chk_orders_confirmation,(slot_id IS NULL) = (actual_date IS NULL)"`
	SlotID     *int64     `gorm:"index"`
	UserID     *int64     `gorm:"index"`
	CreatedAt  time.Time  `gorm:"type:timestamptz;not null;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// An unpersisted order maps to ID 0 so that the database assigns one.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:        aggregate.ID().Int64(),
		Maked:     aggregate.IsMade(),
		CreatedAt: aggregate.CreatedAt(),
	}
	if userID := aggregate.User(); userID != nil {
		raw := userID.Int64()
		dto.UserID = &raw
	}
	if c := aggregate.Confirmation(); c != nil {
		slotID := c.SlotID().Int64()
		at := c.At()
		dto.SlotID = &slotID
		dto.ActualDate = &at
	}
	return dto
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	var userID *kernel.ID
	if dto.UserID != nil {
		uID, userErr := kernel.NewID(*dto.UserID)
		if userErr != nil {
			return nil, userErr
		}
		userID = &uID
	}

	var confirmation *order.Confirmation
	if dto.SlotID != nil && dto.ActualDate != nil {
		slotID, slotErr := kernel.NewID(*dto.SlotID)
		if slotErr != nil {
			return nil, slotErr
		}
		c, confErr := order.NewConfirmation(slotID, *dto.ActualDate)
		if confErr != nil {
			return nil, confErr
		}
		confirmation = &c
	}

	return order.RestoreOrder(id, userID, dto.Maked, confirmation, dto.CreatedAt)
}
