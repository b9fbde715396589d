// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that zero values fail validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was built by a constructor.
// The zero value is "not constructed".
//
// Example:
//
//	type SlotID struct {
//	    value int64
//	    guard guard.ConstructorGuard
//	}
//
//	func (s SlotID) Validate() error {
//	    return s.guard.Validate(ErrSlotIDIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
