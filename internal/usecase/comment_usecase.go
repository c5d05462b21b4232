package usecase

import (
	"context"

	"recipefinder/internal/domain/entity"
)

// CommentUsecase defines the comment and rating operations.
type CommentUsecase interface {
	// AddComment stores a comment on an existing recipe.
	AddComment(ctx context.Context, comment *entity.Comment) error

	// ListByRecipe lists the comments of a recipe.
	ListByRecipe(ctx context.Context, recipeID int64) ([]*entity.Comment, error)

	// ListByUser lists the comments written by a user.
	ListByUser(ctx context.Context, userID string) ([]*entity.Comment, error)

	// AverageRating returns the mean comment rating of a recipe, 0 when it has none.
	AverageRating(ctx context.Context, recipeID int64) (float64, error)
}
