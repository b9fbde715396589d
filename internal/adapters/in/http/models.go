package http

import (
	"time"

	"myfood/internal/core/application/usecases/queries"
)

// Slot is the slot inside an order response.
type Slot struct {
	Id        int64 `json:"id"`
	LimitSlot int   `json:"limitSlot"`
	Actual    int   `json:"actual"`
}

// Order is the order projection returned by every order route.
// Slot is serialised as null while the order is unconfirmed.
type Order struct {
	Id    int64 `json:"id"`
	Maked bool  `json:"maked"`
	Slot  *Slot `json:"slot"`
}

// UpdateOrder is the body of PUT /order/{id}.
type UpdateOrder struct {
	Maked      bool       `json:"maked"`
	UserId     *int64     `json:"userId"`
	SlotId     *int64     `json:"slotId"`
	ActualDate *time.Time `json:"actualDate"`
}

type Dish struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type Menu struct {
	Id        int64   `json:"id"`
	Price     float64 `json:"price"`
	Appetizer Dish    `json:"appetizer"`
	First     Dish    `json:"first"`
	Second    Dish    `json:"second"`
	Dessert   Dish    `json:"dessert"`
}

// Error is the body of every failed command.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func toOrder(p queries.OrderProjection) Order {
	o := Order{Id: p.ID, Maked: p.Maked}
	if p.Slot != nil {
		o.Slot = &Slot{Id: p.Slot.ID, LimitSlot: p.Slot.LimitSlot, Actual: p.Slot.Actual}
	}
	return o
}

func toOrders(projections []queries.OrderProjection) []Order {
	response := make([]Order, len(projections))
	for i, p := range projections {
		response[i] = toOrder(p)
	}
	return response
}

func toDish(d queries.DishView) Dish {
	return Dish{Id: d.ID, Name: d.Name}
}

func toMenus(views []queries.MenuView) []Menu {
	response := make([]Menu, len(views))
	for i, m := range views {
		response[i] = Menu{
			Id:        m.ID,
			Price:     m.Price,
			Appetizer: toDish(m.Appetizer),
			First:     toDish(m.First),
			Second:    toDish(m.Second),
			Dessert:   toDish(m.Dessert),
		}
	}
	return response
}
