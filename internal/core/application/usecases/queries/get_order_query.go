package queries

import (
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order by identity.
type GetOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.ID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}
