package repository

import (
	"context"

	"recipefinder/internal/domain/entity"
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user. A duplicate external id yields errors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// FindByExternalID retrieves a user by the identity provider's key.
	FindByExternalID(ctx context.Context, externalID string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateImage replaces the profile image reference of a user.
	UpdateImage(ctx context.Context, externalID, imageRef string) error
}
