package menu

import (
	"fmt"

	"myfood/internal/pkg/errs"
)

// Course is the position a dish takes in a menu.
type Course int

const (
	// UnknownCourse catches uninitialized values.
	UnknownCourse Course = iota
	Appetizer
	First
	Second
	Dessert
)

func getCourseStrings() map[Course]string {
	return map[Course]string{
		UnknownCourse: "unknown",
		Appetizer:     "appetizer",
		First:         "first",
		Second:        "second",
		Dessert:       "dessert",
	}
}

// Validate checks that the course is one of the four menu courses.
func (c Course) Validate() error {
	if c < Appetizer || c > Dessert {
		return errs.NewValueIsInvalidErrorWithCause("course is invalid", fmt.Errorf("%d is not a valid course", c))
	}
	return nil
}

func (c Course) String() string {
	if s, ok := getCourseStrings()[c]; ok {
		return s
	}
	return "unknown"
}

// ParseCourse maps a course name back to its value.
func ParseCourse(s string) (Course, error) {
	for c, name := range getCourseStrings() {
		if c != UnknownCourse && name == s {
			return c, nil
		}
	}
	return UnknownCourse, errs.NewValueIsInvalidErrorWithCause("course is invalid", fmt.Errorf("%q is not a valid course", s))
}
