package repository

import (
	"context"

	"recipefinder/internal/domain/entity"
)

// CommentRepository defines the persistence operations for comments.
type CommentRepository interface {
	// Create inserts the comment and sets its generated ID.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByRecipe lists the comments of a recipe, oldest first.
	FindByRecipe(ctx context.Context, recipeID int64) ([]*entity.Comment, error)

	// FindByUser lists the comments written by a user, oldest first.
	FindByUser(ctx context.Context, userID string) ([]*entity.Comment, error)

	// AverageRating returns the mean rating of a recipe's comments, or 0 when there are none.
	AverageRating(ctx context.Context, recipeID int64) (float64, error)
}
