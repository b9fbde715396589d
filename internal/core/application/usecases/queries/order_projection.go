// Package queries contains read operations of the ordering workflow.
// Handlers run SQL directly against the read model and return flat responses;
// they never load aggregates.
package queries

import (
	"database/sql"
)

// SlotView is the slot as shown inside an order projection.
type SlotView struct {
	ID        int64
	LimitSlot int
	Actual    int
}

// OrderProjection is the reduced view of an order returned to callers.
// User and menu details are deliberately left out. Slot is nil while the order
// is unconfirmed.
type OrderProjection struct {
	ID    int64
	Maked bool
	Slot  *SlotView
}

const selectOrderProjection = `
	SELECT
		o.id,
		o.maked,
		s.id,
		s.limit_slot,
		s.actual
	FROM orders o
	LEFT JOIN slots s ON s.id = o.slot_id
`

func scanOrderProjections(rows *sql.Rows) ([]OrderProjection, error) {
	defer rows.Close()

	orders := make([]OrderProjection, 0)
	for rows.Next() {
		var (
			p         OrderProjection
			slotID    sql.NullInt64
			limitSlot sql.NullInt64
			actual    sql.NullInt64
		)
		if err := rows.Scan(&p.ID, &p.Maked, &slotID, &limitSlot, &actual); err != nil {
			return nil, err
		}
		if slotID.Valid {
			p.Slot = &SlotView{
				ID:        slotID.Int64,
				LimitSlot: int(limitSlot.Int64),
				Actual:    int(actual.Int64),
			}
		}
		orders = append(orders, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
