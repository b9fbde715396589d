package menu

import (
	"errors"
	"strings"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/errs"
)

var (
	ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")
	ErrIDAlreadyAssigned    = errors.New("identity is already assigned")
)

// Dish is a single plate that can fill one course of a menu.
type Dish struct {
	id            kernel.ID
	name          string
	course        Course
	isConstructed bool
}

// NewDish creates an unpersisted dish.
func NewDish(name string, course Course) (*Dish, error) {
	d := &Dish{isConstructed: true}
	if err := errors.Join(d.setName(name), d.setCourse(course)); err != nil {
		return nil, err
	}
	return d, nil
}

// RestoreDish rebuilds a persisted dish.
func RestoreDish(id kernel.ID, name string, course Course) (*Dish, error) {
	d := &Dish{isConstructed: true}
	if err := errors.Join(id.Validate(), d.setName(name), d.setCourse(course)); err != nil {
		return nil, err
	}
	d.id = id
	return d, nil
}

func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

func (d *Dish) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if d.id.Validate() == nil {
		return ErrIDAlreadyAssigned
	}
	d.id = id
	return nil
}

func (d *Dish) ID() kernel.ID {
	return d.id
}

func (d *Dish) Name() string {
	return d.name
}

func (d *Dish) Course() Course {
	return d.course
}

func (d *Dish) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Dish) setCourse(course Course) error {
	if err := course.Validate(); err != nil {
		return err
	}
	d.course = course
	return nil
}
