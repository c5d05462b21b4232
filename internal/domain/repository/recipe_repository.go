// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"recipefinder/internal/domain/entity"
)

// RecipeQuery is the store-level form of a recipe filter. Ingredient fragments
// have already been expanded into stored ingredient names.
type RecipeQuery struct {
	Name            string
	Types           []string
	MaxCalories     int
	IngredientNames []string
}

// RecipeRepository defines the persistence operations for recipes.
//
// Point lookups return errors.ErrRecipeNotFound when no row matches. List
// queries return an empty slice for no rows.
type RecipeRepository interface {
	// Create inserts the recipe and sets its generated ID.
	// A duplicate name yields errors.ErrRecipeNameTaken.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindByID retrieves a single recipe by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Recipe, error)

	// FindByName retrieves the recipe with exactly this name.
	FindByName(ctx context.Context, name string) (*entity.Recipe, error)

	// FindByNameFragment retrieves one recipe whose name contains fragment.
	// Which match is returned when several exist is unspecified.
	FindByNameFragment(ctx context.Context, fragment string) (*entity.Recipe, error)

	// FindByOwner lists the recipes published by a user, sorted by name.
	FindByOwner(ctx context.Context, userID string) ([]*entity.Recipe, error)

	// FindByType lists the recipes of a food type, sorted by name.
	FindByType(ctx context.Context, foodType string) ([]*entity.Recipe, error)

	// FindFavoritedBy lists the recipes a user has favorited, sorted by name.
	FindFavoritedBy(ctx context.Context, userID string) ([]*entity.Recipe, error)

	// Filter lists the distinct recipes matching every active predicate of q, sorted by name.
	Filter(ctx context.Context, q RecipeQuery) ([]*entity.Recipe, error)
}
