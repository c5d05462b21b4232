// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "recipefinder/internal/delivery/context"
	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/repository"
	"recipefinder/internal/usecase"

	"github.com/pkg/errors"
)

// ingredientService implements the IngredientUsecase interface.
type ingredientService struct {
	ingredientRepo repository.IngredientRepository
	logger         *slog.Logger
}

// NewIngredientService creates a new ingredient service instance
func NewIngredientService(ingredientRepo repository.IngredientRepository, logger *slog.Logger) usecase.IngredientUsecase {
	return &ingredientService{
		ingredientRepo: ingredientRepo,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *ingredientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindByExactName returns the ingredient stored under exactly this name.
func (srv *ingredientService) FindByExactName(ctx context.Context, name string) (*entity.Ingredient, error) {
	ingredient, err := srv.ingredientRepo.FindByName(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ingredient")
	}

	return ingredient, nil
}

// SearchByNameFragment lists the ingredients whose name contains fragment.
func (srv *ingredientService) SearchByNameFragment(ctx context.Context, fragment string) ([]*entity.Ingredient, error) {
	ingredients, err := srv.ingredientRepo.SearchByFragment(ctx, fragment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search ingredients")
	}

	return ingredients, nil
}

// FindOrCreate returns the ID of the named ingredient, creating it when absent.
func (srv *ingredientService) FindOrCreate(ctx context.Context, name string) (int64, error) {
	ingredient, err := findOrCreateIngredient(ctx, srv.ingredientRepo, name)
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Debug("Resolved ingredient",
		slog.String("name", ingredient.Name),
		slog.Int64("ingredient_id", ingredient.ID),
	)

	return ingredient.ID, nil
}

// ResolveFragments expands each fragment with a substring search and returns the
// union of matching names, sorted. Blank fragments are skipped.
func (srv *ingredientService) ResolveFragments(ctx context.Context, fragments []string) ([]string, error) {
	seen := make(map[string]struct{})
	names := make([]string, 0, len(fragments))

	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}

		matches, err := srv.ingredientRepo.SearchByFragment(ctx, fragment)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve ingredient fragment %q", fragment)
		}

		for _, match := range matches {
			if _, ok := seen[match.Name]; ok {
				continue
			}
			seen[match.Name] = struct{}{}
			names = append(names, match.Name)
		}
	}

	slices.Sort(names)

	return names, nil
}

// ListIngredients lists every stored ingredient.
func (srv *ingredientService) ListIngredients(ctx context.Context) ([]*entity.Ingredient, error) {
	ingredients, err := srv.ingredientRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	return ingredients, nil
}

// findOrCreateIngredient looks the name up, inserts it when absent and, when a
// concurrent writer won the insert, re-reads the winner exactly once.
func findOrCreateIngredient(ctx context.Context, repo repository.IngredientRepository, name string) (*entity.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("ingredient name is required")
	}

	existing, err := repo.FindByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !domainerrors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to look up ingredient")
	}

	created := &entity.Ingredient{Name: name}
	err = repo.Create(ctx, created)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, domainerrors.ErrIngredientNameTaken) {
		return nil, errors.Wrap(err, "failed to create ingredient")
	}

	winner, err := repo.FindByName(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read ingredient after concurrent insert")
	}

	return winner, nil
}
