// Package menurepo provides GORM persistence for menus and dishes.
package menurepo

import (
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/menu"
)

// DishDTO is the row of the dishes table. Course is stored by name.
type DishDTO struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"type:varchar(255);not null"`
	Course string `gorm:"type:varchar(16);not null;index"`
}

func (DishDTO) TableName() string {
	return "dishes"
}

// MenuDTO is the row of the menus table. Every course column references a dish.
type MenuDTO struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Price       float64 `gorm:"not null;check:chk_menus_price,price >= 0"`
	AppetizerID int64   `gorm:"not null;index"`
	FirstID     int64   `gorm:"not null;index"`
	SecondID    int64   `gorm:"not null;index"`
	DessertID   int64   `gorm:"not null;index"`
	Visible     bool    `gorm:"not null;default:false;index"`

	Appetizer DishDTO `gorm:"foreignKey:AppetizerID;constraint:OnDelete:RESTRICT"`
	First     DishDTO `gorm:"foreignKey:FirstID;constraint:OnDelete:RESTRICT"`
	Second    DishDTO `gorm:"foreignKey:SecondID;constraint:OnDelete:RESTRICT"`
	Dessert   DishDTO `gorm:"foreignKey:DessertID;constraint:OnDelete:RESTRICT"`
}

func (MenuDTO) TableName() string {
	return "menus"
}

func dishToDomain(dto DishDTO) (*menu.Dish, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	course, err := menu.ParseCourse(dto.Course)
	if err != nil {
		return nil, err
	}
	return menu.RestoreDish(id, dto.Name, course)
}

func menuFromDomain(aggregate *menu.Menu) MenuDTO {
	courses := aggregate.Courses()
	return MenuDTO{
		ID:          aggregate.ID().Int64(),
		Price:       aggregate.Price(),
		AppetizerID: courses.Appetizer.Int64(),
		FirstID:     courses.First.Int64(),
		SecondID:    courses.Second.Int64(),
		DessertID:   courses.Dessert.Int64(),
		Visible:     aggregate.IsVisible(),
	}
}

func menuToDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	var courses menu.Courses
	courses.Appetizer, _ = kernel.NewID(dto.AppetizerID)
	courses.First, _ = kernel.NewID(dto.FirstID)
	courses.Second, _ = kernel.NewID(dto.SecondID)
	courses.Dessert, _ = kernel.NewID(dto.DessertID)
	// RestoreMenu reports any course left zero by a failed conversion.
	return menu.RestoreMenu(id, dto.Price, courses, dto.Visible)
}
