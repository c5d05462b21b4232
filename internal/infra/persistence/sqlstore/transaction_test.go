package sqlstore

import (
	"context"
	"testing"

	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/repository"
	"recipefinder/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewRecipeRepository().Create(ctx, &entity.Recipe{Name: "Committed"})
	})
	require.NoError(t, err)

	errBoom := errors.New("boom")
	err = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewRecipeRepository().Create(ctx, &entity.Recipe{Name: "Rolled back"}); err != nil {
			return err
		}

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	repo := NewRecipeRepository(db)
	_, err = repo.FindByName(ctx, "Committed")
	require.NoError(t, err)
	_, err = repo.FindByName(ctx, "Rolled back")
	assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestTransactionManager_RecoversFromConstraintViolation(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	require.NoError(t, NewIngredientRepository(db).Create(ctx, &entity.Ingredient{Name: "Salt"}))

	var resolved *entity.Ingredient
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		ingredients := factory.NewIngredientRepository()

		createErr := ingredients.Create(ctx, &entity.Ingredient{Name: "Salt"})
		require.ErrorIs(t, createErr, domainerrors.ErrIngredientNameTaken)

		// The failed insert only rolled back its savepoint.
		var err error
		resolved, err = ingredients.FindByName(ctx, "Salt")
		if err != nil {
			return err
		}

		return ingredients.Create(ctx, &entity.Ingredient{Name: "Pepper"})
	})
	require.NoError(t, err)
	require.NotNil(t, resolved)

	_, err = NewIngredientRepository(db).FindByName(ctx, "Pepper")
	require.NoError(t, err)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
			_ = factory.NewRecipeRepository().Create(ctx, &entity.Recipe{Name: "Panicked"})
			panic("unexpected")
		})
	})

	_, err := NewRecipeRepository(db).FindByName(ctx, "Panicked")
	assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}
