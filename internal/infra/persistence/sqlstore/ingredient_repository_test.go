package sqlstore

import (
	"context"
	"sync"
	"testing"

	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewIngredientRepository(db)
	ctx := context.Background()

	salt := &entity.Ingredient{Name: "Salt"}
	require.NoError(t, repo.Create(ctx, salt))
	assert.NotZero(t, salt.ID)

	found, err := repo.FindByName(ctx, "Salt")
	require.NoError(t, err)
	assert.Equal(t, salt.ID, found.ID)

	_, err = repo.FindByName(ctx, "Pepper")
	assert.ErrorIs(t, err, domainerrors.ErrIngredientNotFound)

	err = repo.Create(ctx, &entity.Ingredient{Name: "Salt"})
	assert.ErrorIs(t, err, domainerrors.ErrIngredientNameTaken)
	assert.True(t, domainerrors.IsConstraintViolation(err))

	// Exact names are case-sensitive.
	lower := &entity.Ingredient{Name: "salt"}
	require.NoError(t, repo.Create(ctx, lower))
	assert.NotEqual(t, salt.ID, lower.ID)
}

func TestIngredientRepository_SearchByFragment(t *testing.T) {
	db := newTestDB(t)
	repo := NewIngredientRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Tomato", "Cherry Tomato", "Potato", "Rice", "Óleo de soja"} {
		require.NoError(t, repo.Create(ctx, &entity.Ingredient{Name: name}))
	}

	tests := []struct {
		fragment string
		want     []string
	}{
		{fragment: "tom", want: []string{"Cherry Tomato", "Tomato"}},
		{fragment: "TATO", want: []string{"Potato"}},
		{fragment: "ato", want: []string{"Cherry Tomato", "Potato", "Tomato"}},
		{fragment: "Óleo", want: []string{"Óleo de soja"}},
		{fragment: "Óleo DE", want: []string{"Óleo de soja"}},
		{fragment: "%", want: []string{}},
		{fragment: "saffron", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			ingredients, err := repo.SearchByFragment(ctx, tt.fragment)
			require.NoError(t, err)

			names := make([]string, 0, len(ingredients))
			for _, ingredient := range ingredients {
				names = append(names, ingredient.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Equal(t, "Cherry Tomato", all[0].Name)
}

func TestIngredientRepository_ConcurrentCreate(t *testing.T) {
	db := newTestDB(t)
	repo := NewIngredientRepository(db)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := repo.Create(context.Background(), &entity.Ingredient{Name: "Basil"})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case domainerrors.IsConstraintViolation(err):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)

	var count int64
	require.NoError(t, db.Model(&model.IngredientModel{}).Where("name = ?", "Basil").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUsedIngredientRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUsedIngredientRepository(db)

	recipe := seedRecipe(t, db, &entity.Recipe{Name: "Pasta"}, "Tomato")
	tomato, err := NewIngredientRepository(db).FindByName(ctx, "Tomato")
	require.NoError(t, err)

	basil := &entity.Ingredient{Name: "Basil"}
	require.NoError(t, NewIngredientRepository(db).Create(ctx, basil))
	require.NoError(t, repo.Create(ctx, &entity.UsedIngredient{RecipeID: recipe.ID, IngredientID: basil.ID, Quantity: "3 leaves"}))

	t.Run("duplicate pair is rejected and quantity kept", func(t *testing.T) {
		err := repo.Create(ctx, &entity.UsedIngredient{RecipeID: recipe.ID, IngredientID: tomato.ID, Quantity: "2 cups"})
		assert.ErrorIs(t, err, domainerrors.ErrIngredientAlreadyUsed)

		ingredients, err := repo.FindByRecipe(ctx, recipe.ID)
		require.NoError(t, err)
		require.Len(t, ingredients, 2)
		assert.Equal(t, "Basil", ingredients[0].Name)
		assert.Equal(t, "3 leaves", ingredients[0].Quantity)
		assert.Equal(t, "Tomato", ingredients[1].Name)
		assert.Equal(t, "1 unit", ingredients[1].Quantity)
		assert.Equal(t, tomato.ID, ingredients[1].IngredientID)
	})

	t.Run("unknown ingredient violates the reference", func(t *testing.T) {
		err := repo.Create(ctx, &entity.UsedIngredient{RecipeID: recipe.ID, IngredientID: 9999, Quantity: "1"})
		require.Error(t, err)
		assert.True(t, domainerrors.IsConstraintViolation(err))
	})

	t.Run("recipe without ingredients", func(t *testing.T) {
		empty := seedRecipe(t, db, &entity.Recipe{Name: "Water"})

		ingredients, err := repo.FindByRecipe(ctx, empty.ID)
		require.NoError(t, err)
		assert.Empty(t, ingredients)
	})
}
