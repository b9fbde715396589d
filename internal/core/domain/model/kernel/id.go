package kernel

import (
	"fmt"
	"strconv"

	"myfood/internal/pkg/errs"
	"myfood/internal/pkg/guard"
)

// ErrIDIsNotConstructed indicates that an ID was not created through NewID or IDFromString.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is a value object wrapping the database identity of an entity.
// Identities are assigned by the store (serial columns), so a valid ID is always positive.
//
// The zero value of ID is invalid and means "not assigned yet".
//
// Example usage:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(id) // "42"
type ID struct {
	value int64
	guard guard.ConstructorGuard
}

// NewID creates an ID from a raw identity value.
// Returns an out-of-range error when value is not positive.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsOutOfRangeError("id", value, int64(1), "max int64")
	}
	return ID{value: value, guard: guard.NewConstructorGuard()}, nil
}

// MustNewID is NewID for literals known to be valid. It panics otherwise.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// IDFromString parses a decimal identity such as a path parameter.
//
// Example:
//
//	id, err := kernel.IDFromString(ctx.Param("id"))
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func IDFromString(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("invalid ID format: %w", err))
	}
	return NewID(value)
}

// Int64 returns the raw identity value, 0 for the zero ID.
func (i ID) Int64() int64 {
	return i.value
}

// String returns the decimal representation of the identity.
func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// IsEqual reports whether both IDs carry the same identity.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate returns ErrIDIsNotConstructed for a zero value ID.
func (i ID) Validate() error {
	return i.guard.Validate(ErrIDIsNotConstructed)
}
