// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-academy/backend/internal/domain/entity"
)

// UserFilter narrows the admin user listing. Nil fields are not applied.
type UserFilter struct {
	Type   *entity.UserType
	Status *entity.UserStatus
}

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List retrieves users matching the filter, newest first.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)
}
