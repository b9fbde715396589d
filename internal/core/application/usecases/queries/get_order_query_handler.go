package queries

import (
	"context"

	"myfood/internal/core/application/usecases"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns usecases.ErrOrderNotFound when no order has the identity.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderProjection, error) {
	if err := query.Validate(); err != nil {
		return OrderProjection{}, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(selectOrderProjection+`WHERE o.id = ?`, query.OrderID().Int64()).
		Rows()
	if err != nil {
		return OrderProjection{}, err
	}
	orders, err := scanOrderProjections(rows)
	if err != nil {
		return OrderProjection{}, err
	}
	if len(orders) == 0 {
		return OrderProjection{}, usecases.ErrOrderNotFound
	}
	return orders[0], nil
}
