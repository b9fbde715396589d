package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetVisibleMenusQueryHandler struct {
	db *gorm.DB
}

func NewGetVisibleMenusQueryHandler(db *gorm.DB) GetVisibleMenusQueryHandler {
	return GetVisibleMenusQueryHandler{db: db}
}

func (h GetVisibleMenusQueryHandler) Handle(ctx context.Context, query GetVisibleMenusQuery) ([]MenuView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id, m.price,
			a.id, a.name,
			f.id, f.name,
			s.id, s.name,
			d.id, d.name
		FROM menus m
		JOIN dishes a ON a.id = m.appetizer_id
		JOIN dishes f ON f.id = m.first_id
		JOIN dishes s ON s.id = m.second_id
		JOIN dishes d ON d.id = m.dessert_id
		WHERE m.visible
		ORDER BY m.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := make([]MenuView, 0)
	for rows.Next() {
		var m MenuView
		if err = rows.Scan(
			&m.ID, &m.Price,
			&m.Appetizer.ID, &m.Appetizer.Name,
			&m.First.ID, &m.First.Name,
			&m.Second.ID, &m.Second.Name,
			&m.Dessert.ID, &m.Dessert.Name,
		); err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return menus, nil
}
