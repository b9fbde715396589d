package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetKitchenOrdersQueryHandler lists confirmed orders, earliest confirmation first.
type GetKitchenOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetKitchenOrdersQueryHandler(db *gorm.DB) GetKitchenOrdersQueryHandler {
	return GetKitchenOrdersQueryHandler{db: db}
}

func (h GetKitchenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenOrdersQuery,
) ([]OrderProjection, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectOrderProjection + `
		WHERE o.slot_id IS NOT NULL
		ORDER BY o.actual_date, o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	return scanOrderProjections(rows)
}
