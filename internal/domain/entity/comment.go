package entity

import "time"

// Comment is a rated review left by a user on a recipe.
// Many comments per user per recipe are allowed.
type Comment struct {
	ID        int64
	Rating    float64 // Expected between 1.0 and 5.0, not enforced.
	Text      string
	UserID    string
	RecipeID  int64
	CreatedAt time.Time
}
