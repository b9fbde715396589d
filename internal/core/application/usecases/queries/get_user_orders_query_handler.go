package queries

import (
	"context"

	"myfood/internal/core/application/usecases"

	"gorm.io/gorm"
)

type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle returns usecases.ErrUserNotFound for an unknown user, whether or not
// any order references that identity. Orders are sorted by creation, newest first.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]OrderProjection, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	userID := query.UserID().Int64()

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM users WHERE id = ?)`, userID).Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, usecases.ErrUserNotFound
	}

	rows, err := db.Raw(selectOrderProjection+`
		WHERE o.user_id = ?
		ORDER BY o.created_at DESC, o.id DESC
	`, userID).Rows()
	if err != nil {
		return nil, err
	}
	return scanOrderProjections(rows)
}
