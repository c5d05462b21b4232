package repository

import (
	"context"

	"recipefinder/internal/domain/entity"
)

// IngredientRepository defines the persistence operations for ingredients.
type IngredientRepository interface {
	// Create inserts the ingredient and sets its generated ID.
	// A duplicate name yields errors.ErrIngredientNameTaken.
	Create(ctx context.Context, ingredient *entity.Ingredient) error

	// FindByName retrieves the ingredient with exactly this name (case-sensitive).
	FindByName(ctx context.Context, name string) (*entity.Ingredient, error)

	// SearchByFragment lists every ingredient whose name contains fragment, sorted by name.
	SearchByFragment(ctx context.Context, fragment string) ([]*entity.Ingredient, error)

	// FindAll lists every ingredient, sorted by name.
	FindAll(ctx context.Context) ([]*entity.Ingredient, error)
}

// UsedIngredientRepository defines the persistence operations for recipe-ingredient associations.
type UsedIngredientRepository interface {
	// Create inserts the association.
	// An existing (RecipeID, IngredientID) pair yields errors.ErrIngredientAlreadyUsed.
	Create(ctx context.Context, used *entity.UsedIngredient) error

	// FindByRecipe lists the ingredients of a recipe with their quantities, sorted by ingredient name.
	FindByRecipe(ctx context.Context, recipeID int64) ([]*entity.RecipeIngredient, error)
}
