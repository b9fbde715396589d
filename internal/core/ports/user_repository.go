package ports

import (
	"context"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	// Add persists a new user and assigns its identity.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its identity.
	// Returns errs.ObjectNotFoundError if the user does not exist.
	Get(ctx context.Context, id kernel.ID) (*user.User, error)
}
