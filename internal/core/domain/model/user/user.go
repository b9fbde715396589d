// Package user provides the User aggregate. Users own orders by identity only;
// the ordering workflow reads users to check existence.
package user

import (
	"errors"
	"strings"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/errs"
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	ErrIDAlreadyAssigned    = errors.New("user identity is already assigned")
)

// User is a customer that can own orders.
type User struct {
	id            kernel.ID
	name          string
	isConstructed bool
}

// NewUser creates a user with a non-blank name.
func NewUser(name string) (*User, error) {
	u := &User{isConstructed: true}
	if err := u.setName(name); err != nil {
		return nil, err
	}
	return u, nil
}

// RestoreUser rebuilds a persisted user.
func RestoreUser(id kernel.ID, name string) (*User, error) {
	u := &User{isConstructed: true}
	if err := errors.Join(id.Validate(), u.setName(name)); err != nil {
		return nil, err
	}
	u.id = id
	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// AssignID sets the identity handed out by the store on first insert.
func (u *User) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if u.id.Validate() == nil {
		return ErrIDAlreadyAssigned
	}
	u.id = id
	return nil
}

func (u *User) ID() kernel.ID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}
