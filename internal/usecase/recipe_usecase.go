package usecase

import (
	"context"

	"recipefinder/internal/domain/entity"
)

// RecipeUsecase defines the recipe query and mutation operations.
type RecipeUsecase interface {
	// FilterRecipes returns the distinct recipes matching every active predicate
	// of filter, sorted by name. No match is an empty slice, not an error.
	FilterRecipes(ctx context.Context, filter entity.RecipeFilter) ([]*entity.Recipe, error)

	// FilterRecipeSummaries is FilterRecipes with each result decorated with its aggregates.
	FilterRecipeSummaries(ctx context.Context, filter entity.RecipeFilter) ([]*entity.RecipeSummary, error)

	// GetRecipe returns a recipe with its ingredients and aggregates.
	// callerID may be empty for anonymous callers.
	GetRecipe(ctx context.Context, id int64, callerID string) (*entity.RecipeDetail, error)

	// FindByName returns the recipe with exactly this name.
	FindByName(ctx context.Context, name string) (*entity.Recipe, error)

	// SearchByName returns a single recipe whose name contains fragment.
	SearchByName(ctx context.Context, fragment string) (*entity.Recipe, error)

	// ListByOwner lists the recipes published by a user.
	ListByOwner(ctx context.Context, userID string) ([]*entity.Recipe, error)

	// ListByType lists the recipes of a food type.
	ListByType(ctx context.Context, foodType string) ([]*entity.Recipe, error)

	// ListFavorites lists the recipes a user has favorited.
	ListFavorites(ctx context.Context, userID string) ([]*entity.Recipe, error)

	// Summarize computes the aggregates of a recipe.
	Summarize(ctx context.Context, recipe *entity.Recipe) (*entity.RecipeSummary, error)

	// CreateRecipe stores a recipe and its ingredients in one transaction and returns its ID.
	// A duplicate name yields errors.ErrRecipeNameTaken.
	CreateRecipe(ctx context.Context, recipe *entity.Recipe, ingredients []IngredientLine) (int64, error)

	// AddUsedIngredient attaches an ingredient, found or created by name, to a recipe.
	// A recipe already using the ingredient yields errors.ErrIngredientAlreadyUsed.
	AddUsedIngredient(ctx context.Context, recipeID int64, ingredientName, quantity string) (*entity.RecipeIngredient, error)

	// ShareQRCode renders a PNG QR code pointing at the recipe.
	ShareQRCode(ctx context.Context, recipeID int64) ([]byte, error)
}

// IngredientLine is one ingredient of a recipe being created.
type IngredientLine struct {
	Name     string `json:"name" yaml:"name" validate:"required,max=255"`
	Quantity string `json:"quantity" yaml:"quantity" validate:"max=255"`
}
