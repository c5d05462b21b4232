package usecase

import (
	"context"

	"recipefinder/internal/domain/entity"
)

// FavoriteUsecase defines the favorite state machine and its aggregate.
type FavoriteUsecase interface {
	// ToggleFavorite flips the (userID, recipeID) favorite and returns the new state.
	ToggleFavorite(ctx context.Context, userID string, recipeID int64) (entity.FavoriteState, error)

	// IsFavorited reports whether the user has favorited the recipe.
	IsFavorited(ctx context.Context, userID string, recipeID int64) (bool, error)

	// FavoriteCount counts the favorites of a recipe, recomputed on every call.
	FavoriteCount(ctx context.Context, recipeID int64) (int64, error)
}
