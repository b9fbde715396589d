package slotrepo

import (
	"context"
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/slot"
	"myfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSlotRepository implements SlotRepository using GORM.
type GormSlotRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormSlotRepository creates a new GORM slot repository.
func NewGormSlotRepository(db *gorm.DB, tracker aggregateTracker) *GormSlotRepository {
	return &GormSlotRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new slot and assigns the generated identity.
func (r *GormSlotRepository) Add(ctx context.Context, aggregate *slot.Slot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.AssignID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a slot by ID.
func (r *GormSlotRepository) Get(ctx context.Context, id kernel.ID) (*slot.Slot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SlotDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("slot", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Reserve increments the stored occupancy by one if, and only if, the stored
// slot still has room. The check and the increment are one statement, so two
// racing transactions cannot both take the last place.
func (r *GormSlotRepository) Reserve(ctx context.Context, aggregate *slot.Slot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	id := aggregate.ID()
	if err := id.Validate(); err != nil {
		return err
	}

	var dto SlotDTO
	result := r.db.WithContext(ctx).Raw(`
		UPDATE slots
		SET actual = actual + 1
		WHERE id = ? AND actual < limit_slot
		RETURNING id, limit_slot, actual
	`, id.Int64()).Scan(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
		return slot.ErrSlotFull
	}

	stored, err := toDomain(dto)
	if err != nil {
		return err
	}
	*aggregate = *stored

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
