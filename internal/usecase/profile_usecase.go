package usecase

import (
	"context"

	"recipefinder/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// Register creates the local profile of an identified user.
	Register(ctx context.Context, externalID string, input *RegisterProfileInput) (*entity.User, error)

	// GetProfile returns the profile of a user by identity provider key.
	GetProfile(ctx context.Context, externalID string) (*entity.User, error)

	// FindByEmail returns the profile registered with an email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateImage replaces the user's profile image, a built-in key or an uploaded image URL.
	UpdateImage(ctx context.Context, externalID, imageRef string) error
}

// --- Input DTOs ---

// RegisterProfileInput defines the data required to register a profile.
type RegisterProfileInput struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Nickname  string `json:"nickname" validate:"max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	ImageRef  string `json:"image_ref" validate:"max=1024"`
}
