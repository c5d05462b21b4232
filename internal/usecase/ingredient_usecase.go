// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"recipefinder/internal/domain/entity"
)

// IngredientUsecase resolves free-text ingredient names into stored ingredients.
type IngredientUsecase interface {
	// FindByExactName returns the ingredient with exactly this name or errors.ErrIngredientNotFound.
	FindByExactName(ctx context.Context, name string) (*entity.Ingredient, error)

	// SearchByNameFragment lists the ingredients whose name contains fragment.
	SearchByNameFragment(ctx context.Context, fragment string) ([]*entity.Ingredient, error)

	// FindOrCreate returns the ID of the ingredient named name, creating it when absent.
	// Concurrent callers creating the same name all receive the same ID.
	FindOrCreate(ctx context.Context, name string) (int64, error)

	// ResolveFragments expands fragments into the distinct stored ingredient names they match.
	// Fragments with no match contribute nothing.
	ResolveFragments(ctx context.Context, fragments []string) ([]string, error)

	// ListIngredients lists every ingredient.
	ListIngredients(ctx context.Context) ([]*entity.Ingredient, error)
}
