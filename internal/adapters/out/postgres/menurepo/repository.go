package menurepo

import (
	"context"
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/menu"
	"myfood/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddDish saves a new dish and assigns the generated identity.
func (r *GormMenuRepository) AddDish(ctx context.Context, dish *menu.Dish) error {
	if err := dish.Validate(); err != nil {
		return err
	}

	dto := DishDTO{Name: dish.Name(), Course: dish.Course().String()}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = dish.AssignID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(dish.ID(), dish)
	return nil
}

// GetDish retrieves a dish by ID.
func (r *GormMenuRepository) GetDish(ctx context.Context, id kernel.ID) (*menu.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dish", id.String())
		}
		return nil, err
	}
	return dishToDomain(dto)
}

// Add saves a new menu and assigns the generated identity.
// Associations are omitted; the course dishes must already exist.
func (r *GormMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := menuFromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
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

// Get retrieves a menu by ID.
func (r *GormMenuRepository) Get(ctx context.Context, id kernel.ID) (*menu.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu", id.String())
		}
		return nil, err
	}
	return menuToDomain(dto)
}
