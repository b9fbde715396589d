package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists all orders as projections.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns the orders sorted by identity, which is insertion order.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderProjection, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectOrderProjection + `ORDER BY o.id`).Rows()
	if err != nil {
		return nil, err
	}
	return scanOrderProjections(rows)
}
