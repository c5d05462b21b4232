// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Recipe is a dish published by a user. Its name is unique across the catalog.
type Recipe struct {
	ID          int64     // Generated on insert.
	Name        string    // Globally unique recipe name.
	Description string    // Short description shown in listings.
	Method      string    // Preparation text.
	OwnerUserID string    // External identity key of the author; not enforced as a foreign key.
	Type        string    // Food type label, see FoodTypes.
	Calories    int       // Non-negative calorie count.
	ImageRef    string    // Either a food type label used for iconography or an image URL.
	CreatedAt   time.Time // Timestamp of when the recipe was stored.
}

// RecipeFilter carries the predicates of a recipe search.
// Every predicate is optional; the zero value matches every recipe.
type RecipeFilter struct {
	// Name matches recipes whose name contains it. Empty disables the predicate.
	Name string
	// Types matches recipes whose type is one of the values. Empty disables the predicate.
	Types []string
	// MaxCalories keeps recipes at or below the value. Zero means no limit.
	MaxCalories int
	// IngredientFragments are expanded to stored ingredient names before filtering.
	IngredientFragments []string
}

// RecipeSummary decorates a recipe with its derived aggregates.
type RecipeSummary struct {
	Recipe        *Recipe
	AverageRating float64
	FavoriteCount int64
}

// RecipeDetail is everything a recipe screen shows.
type RecipeDetail struct {
	RecipeSummary
	Ingredients []*RecipeIngredient
	// Favorited is true when the caller has this recipe in their favorites.
	Favorited bool
}
