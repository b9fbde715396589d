package queries

import (
	"errors"

	"myfood/internal/pkg/guard"
)

var ErrGetVisibleMenusQueryIsNotConstructed = errors.New(
	"GetVisibleMenusQuery must be created via NewGetVisibleMenusQuery constructor",
)

// GetVisibleMenusQuery retrieves the menus currently offered to customers.
type GetVisibleMenusQuery struct {
	guard guard.ConstructorGuard
}

func NewGetVisibleMenusQuery() GetVisibleMenusQuery {
	return GetVisibleMenusQuery{guard: guard.NewConstructorGuard()}
}

func (q GetVisibleMenusQuery) Validate() error {
	return q.guard.Validate(ErrGetVisibleMenusQueryIsNotConstructed)
}

// DishView names a dish of a menu.
type DishView struct {
	ID   int64
	Name string
}

// MenuView is a visible menu with its four courses.
type MenuView struct {
	ID        int64
	Price     float64
	Appetizer DishView
	First     DishView
	Second    DishView
	Dessert   DishView
}
