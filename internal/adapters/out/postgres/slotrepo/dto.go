// Package slotrepo provides GORM persistence for pickup slots.
package slotrepo

import (
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/slot"
)

// SlotDTO is the row of the slots table. The check constraint mirrors the
// aggregate invariant so that no writer can overbook a slot.
type SlotDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	LimitSlot int   `gorm:"not null;check:chk_slots_limit,limit_slot >= 0"`
	Actual    int   `gorm:"not null;default:0;check:chk_slots_actual,actual >= 0 AND actual <= limit_slot"`
}

func (SlotDTO) TableName() string {
	return "slots"
}

func fromDomain(aggregate *slot.Slot) SlotDTO {
	return SlotDTO{
		ID:        aggregate.ID().Int64(),
		LimitSlot: aggregate.Limit(),
		Actual:    aggregate.Actual(),
	}
}

func toDomain(dto SlotDTO) (*slot.Slot, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return slot.RestoreSlot(id, dto.LimitSlot, dto.Actual)
}
