package entity

import "time"

// Favorite is a user's bookmark of a recipe, keyed by (UserID, RecipeID).
type Favorite struct {
	UserID    string
	RecipeID  int64
	CreatedAt time.Time
}

// FavoriteState is the result of toggling a favorite.
type FavoriteState string

const (
	// FavoriteStateFavorited means the favorite row exists.
	FavoriteStateFavorited FavoriteState = "favorited"
	// FavoriteStateNotFavorited means the favorite row does not exist.
	FavoriteStateNotFavorited FavoriteState = "not_favorited"
)

// IsFavorited reports whether the state is FavoriteStateFavorited.
func (s FavoriteState) IsFavorited() bool {
	return s == FavoriteStateFavorited
}
