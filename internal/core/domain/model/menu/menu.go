package menu

import (
	"errors"
	"fmt"
	"math"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/errs"
)

// ErrMenuIsNotConstructed is returned when a Menu was not created through NewMenu or RestoreMenu.
var ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")

// Courses holds the dish identities of the four courses of a menu. All four are required.
type Courses struct {
	Appetizer kernel.ID
	First     kernel.ID
	Second    kernel.ID
	Dessert   kernel.ID
}

// Validate checks that every course references a dish.
func (c Courses) Validate() error {
	wrap := func(course Course, id kernel.ID) error {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(course.String(), err)
		}
		return nil
	}
	return errors.Join(
		wrap(Appetizer, c.Appetizer),
		wrap(First, c.First),
		wrap(Second, c.Second),
		wrap(Dessert, c.Dessert),
	)
}

// Menu is a priced four-course offer.
//
// Menu follows these invariants:
//   - price is a finite, non-negative amount
//   - every course references a dish
//   - when built from dishes, each dish's course matches the course it fills
type Menu struct {
	id            kernel.ID
	price         float64
	courses       Courses
	visible       bool
	isConstructed bool
}

// NewMenu creates an unpersisted menu from persisted dishes.
//
// Example:
//
//	m, err := menu.NewMenu(12.5, gazpacho, paella, flan, crema, true)
//	if err != nil {
//	    // a dish is missing, unpersisted or in the wrong course
//	}
func NewMenu(price float64, appetizer, first, second, dessert *Dish, visible bool) (*Menu, error) {
	m := &Menu{visible: visible, isConstructed: true}

	pick := func(want Course, d *Dish) (kernel.ID, error) {
		if err := d.Validate(); err != nil {
			return kernel.ID{}, errs.NewValueIsRequiredErrorWithCause(want.String(), err)
		}
		if d.Course() != want {
			return kernel.ID{}, errs.NewValueIsInvalidErrorWithCause(
				want.String(),
				fmt.Errorf("dish %q is a %s", d.Name(), d.Course()),
			)
		}
		return d.ID(), nil
	}

	var courses Courses
	var errA, errF, errS, errD error
	courses.Appetizer, errA = pick(Appetizer, appetizer)
	courses.First, errF = pick(First, first)
	courses.Second, errS = pick(Second, second)
	courses.Dessert, errD = pick(Dessert, dessert)
	if err := errors.Join(errA, errF, errS, errD); err != nil {
		return nil, err
	}

	if err := errors.Join(m.setPrice(price), m.setCourses(courses)); err != nil {
		return nil, err
	}
	return m, nil
}

// RestoreMenu rebuilds a persisted menu.
func RestoreMenu(id kernel.ID, price float64, courses Courses, visible bool) (*Menu, error) {
	m := &Menu{visible: visible, isConstructed: true}
	if err := errors.Join(id.Validate(), m.setPrice(price), m.setCourses(courses)); err != nil {
		return nil, err
	}
	m.id = id
	return m, nil
}

func (m *Menu) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuIsNotConstructed
	}
	return nil
}

func (m *Menu) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if m.id.Validate() == nil {
		return ErrIDAlreadyAssigned
	}
	m.id = id
	return nil
}

func (m *Menu) ID() kernel.ID {
	return m.id
}

func (m *Menu) Price() float64 {
	return m.price
}

func (m *Menu) Courses() Courses {
	return m.courses
}

func (m *Menu) IsVisible() bool {
	return m.visible
}

// Show makes the menu orderable.
func (m *Menu) Show() {
	m.visible = true
}

// Hide withdraws the menu without deleting it.
func (m *Menu) Hide() {
	m.visible = false
}

func (m *Menu) setPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%v is not a non-negative amount", price))
	}
	m.price = price
	return nil
}

func (m *Menu) setCourses(courses Courses) error {
	if err := courses.Validate(); err != nil {
		return err
	}
	m.courses = courses
	return nil
}
