package ports

import (
	"context"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menus and their dishes.
type MenuRepository interface {
	// AddDish persists a new dish and assigns its identity.
	AddDish(ctx context.Context, dish *menu.Dish) error

	// GetDish retrieves a dish by its identity.
	GetDish(ctx context.Context, id kernel.ID) (*menu.Dish, error)

	// Add persists a new menu and assigns its identity.
	// The four course dishes must already exist.
	Add(ctx context.Context, aggregate *menu.Menu) error

	// Get retrieves a menu by its identity.
	Get(ctx context.Context, id kernel.ID) (*menu.Menu, error)
}
