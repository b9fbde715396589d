package queries

import (
	"errors"

	"myfood/internal/pkg/guard"
)

var ErrGetKitchenOrdersQueryIsNotConstructed = errors.New(
	"GetKitchenOrdersQuery must be created via NewGetKitchenOrdersQuery constructor",
)

// GetKitchenOrdersQuery retrieves the orders the kitchen has to prepare:
// every confirmed order, made or not.
type GetKitchenOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetKitchenOrdersQuery() GetKitchenOrdersQuery {
	return GetKitchenOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetKitchenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenOrdersQueryIsNotConstructed)
}
