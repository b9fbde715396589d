package queries

import (
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery retrieves the order history of one user, newest first.
type GetUserOrdersQuery struct {
	userID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetUserOrdersQuery(userID kernel.ID) (GetUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}
	return GetUserOrdersQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

func (q GetUserOrdersQuery) UserID() kernel.ID {
	return q.userID
}
