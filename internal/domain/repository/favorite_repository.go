package repository

import (
	"context"

	"recipefinder/internal/domain/entity"
)

// FavoriteRepository defines the persistence operations for favorites.
type FavoriteRepository interface {
	// Create inserts the favorite. An existing pair yields errors.ErrFavoriteExists.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the favorite. A missing pair yields errors.ErrFavoriteNotFound.
	Delete(ctx context.Context, userID string, recipeID int64) error

	// Exists reports whether the user has favorited the recipe.
	Exists(ctx context.Context, userID string, recipeID int64) (bool, error)

	// CountByRecipe counts the favorites of a recipe. It returns 0 when there are none.
	CountByRecipe(ctx context.Context, recipeID int64) (int64, error)
}
