package impl

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"recipefinder/config"
	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/infra/persistence/sqlstore"
	"recipefinder/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type storeBackedServices struct {
	db          *gorm.DB
	ingredients usecase.IngredientUsecase
	recipes     usecase.RecipeUsecase
	favorites   usecase.FavoriteUsecase
	comments    usecase.CommentUsecase
}

func newStoreBackedServices(t *testing.T) storeBackedServices {
	t.Helper()

	cfg := &config.Config{
		Database: &config.DatabaseConfig{
			Driver:      "sqlite",
			AutoMigrate: true,
			SQLite: config.SQLiteConfig{
				Path:        filepath.Join(t.TempDir(), "recipes.db"),
				BusyTimeout: 5 * time.Second,
			},
		},
	}

	db, err := sqlstore.Open(cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	logger := newDiscardLogger()
	metrics := newRecordingMetrics()
	txManager := sqlstore.NewTransactionManager(db)
	ingredients := NewIngredientService(sqlstore.NewIngredientRepository(db), logger)

	return storeBackedServices{
		db:          db,
		ingredients: ingredients,
		recipes: NewRecipeService(RecipeServiceParams{
			TxManager:    txManager,
			RecipeRepo:   sqlstore.NewRecipeRepository(db),
			UsedRepo:     sqlstore.NewUsedIngredientRepository(db),
			FavoriteRepo: sqlstore.NewFavoriteRepository(db),
			CommentRepo:  sqlstore.NewCommentRepository(db),
			Ingredients:  ingredients,
			Metrics:      metrics,
			Logger:       logger,
		}),
		favorites: NewFavoriteService(FavoriteServiceParams{
			TxManager:    txManager,
			FavoriteRepo: sqlstore.NewFavoriteRepository(db),
			Metrics:      metrics,
			Logger:       logger,
		}),
		comments: NewCommentService(CommentServiceParams{
			TxManager:   txManager,
			CommentRepo: sqlstore.NewCommentRepository(db),
			Metrics:     metrics,
			Logger:      logger,
		}),
	}
}

func recipeNamesOf(recipes []*entity.Recipe) []string {
	names := make([]string, 0, len(recipes))
	for _, r := range recipes {
		names = append(names, r.Name)
	}

	return names
}

func TestStore_FindOrCreate_Idempotent(t *testing.T) {
	s := newStoreBackedServices(t)
	ctx := context.Background()

	first, err := s.ingredients.FindOrCreate(ctx, "Salt")
	require.NoError(t, err)
	second, err := s.ingredients.FindOrCreate(ctx, "Salt")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	all, err := s.ingredients.ListIngredients(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_FindOrCreate_ConcurrentCallersShareID(t *testing.T) {
	s := newStoreBackedServices(t)
	ctx := context.Background()

	const workers = 8
	ids := make([]int64, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i], errs[i] = s.ingredients.FindOrCreate(ctx, "Pepper")
		}(i)
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}

	all, err := s.ingredients.ListIngredients(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_PastaScenario(t *testing.T) {
	s := newStoreBackedServices(t)
	ctx := context.Background()

	pastaID, err := s.recipes.CreateRecipe(ctx,
		&entity.Recipe{Name: "Pasta", Type: "Italiana", Calories: 500, OwnerUserID: "u1"},
		[]usecase.IngredientLine{{Name: "Pasta"}, {Name: "Tomato", Quantity: "2"}},
	)
	require.NoError(t, err)

	_, err = s.recipes.CreateRecipe(ctx,
		&entity.Recipe{Name: "Brigadeiro", Type: "Brasileira", Calories: 300, OwnerUserID: "u2"},
		[]usecase.IngredientLine{{Name: "Chocolate"}},
	)
	require.NoError(t, err)

	within, err := s.recipes.FilterRecipes(ctx, entity.RecipeFilter{
		Types:               []string{"Italiana"},
		MaxCalories:         600,
		IngredientFragments: []string{"tom"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pasta"}, recipeNamesOf(within))

	over, err := s.recipes.FilterRecipes(ctx, entity.RecipeFilter{
		Types:               []string{"Italiana"},
		MaxCalories:         400,
		IngredientFragments: []string{"tom"},
	})
	require.NoError(t, err)
	assert.Empty(t, over)

	everything, err := s.recipes.FilterRecipes(ctx, entity.RecipeFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Brigadeiro", "Pasta"}, recipeNamesOf(everything))

	// Matching through two ingredients still yields one row.
	both, err := s.recipes.FilterRecipes(ctx, entity.RecipeFilter{IngredientFragments: []string{"a"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Brigadeiro", "Pasta"}, recipeNamesOf(both))

	detail, err := s.recipes.GetRecipe(ctx, pastaID, "")
	require.NoError(t, err)
	require.Len(t, detail.Ingredients, 2)
	assert.Equal(t, "Pasta", detail.Ingredients[0].Name)
	assert.Equal(t, "2", detail.Ingredients[1].Quantity)
}

func TestStore_CreateRecipe_DuplicateNameIsAtomic(t *testing.T) {
	s := newStoreBackedServices(t)
	ctx := context.Background()

	_, err := s.recipes.CreateRecipe(ctx, &entity.Recipe{Name: "Pasta", Description: "original", Type: "Italiana"}, nil)
	require.NoError(t, err)

	_, err = s.recipes.CreateRecipe(ctx,
		&entity.Recipe{Name: "Pasta", Description: "impostor"},
		[]usecase.IngredientLine{{Name: "Garlic"}},
	)
	require.Error(t, err)
	assert.True(t, domainerrors.IsConstraintViolation(err))

	original, err := s.recipes.FindByName(ctx, "Pasta")
	require.NoError(t, err)
	assert.Equal(t, "original", original.Description)

	// The rolled back transaction leaves no orphan ingredient behind.
	_, err = s.ingredients.FindByExactName(ctx, "Garlic")
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestStore_AddUsedIngredient_DuplicateIsConstraintViolation(t *testing.T) {
	s := newStoreBackedServices(t)
	ctx := context.Background()

	id, err := s.recipes.CreateRecipe(ctx, &entity.Recipe{Name: "Soup"}, nil)
	require.NoError(t, err)

	_, err = s.recipes.AddUsedIngredient(ctx, id, "Onion", "1")
	require.NoError(t, err)

	_, err = s.recipes.AddUsedIngredient(ctx, id, "Onion", "3")
	require.Error(t, err)
	assert.True(t, domainerrors.IsConstraintViolation(err))

	detail, err := s.recipes.GetRecipe(ctx, id, "")
	require.NoError(t, err)
	require.Len(t, detail.Ingredients, 1)
	assert.Equal(t, "1", detail.Ingredients[0].Quantity)
}

func TestStore_ToggleFavorite_RoundTrip(t *testing.T) {
	s := newStoreBackedServices(t)
	ctx := context.Background()

	id, err := s.recipes.CreateRecipe(ctx, &entity.Recipe{Name: "Sushi"}, nil)
	require.NoError(t, err)

	state, err := s.favorites.ToggleFavorite(ctx, "u1", id)
	require.NoError(t, err)
	assert.Equal(t, entity.FavoriteStateFavorited, state)

	count, err := s.favorites.FavoriteCount(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	state, err = s.favorites.ToggleFavorite(ctx, "u1", id)
	require.NoError(t, err)
	assert.Equal(t, entity.FavoriteStateNotFavorited, state)

	count, err = s.favorites.FavoriteCount(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, err = s.favorites.ToggleFavorite(ctx, "u1", id+100)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestStore_AverageRating(t *testing.T) {
	s := newStoreBackedServices(t)
	ctx := context.Background()

	id, err := s.recipes.CreateRecipe(ctx, &entity.Recipe{Name: "Feijoada"}, nil)
	require.NoError(t, err)

	average, err := s.comments.AverageRating(ctx, id)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, average, 1e-9)

	require.NoError(t, s.comments.AddComment(ctx, &entity.Comment{RecipeID: id, UserID: "u1", Rating: 3, Text: "ok"}))
	require.NoError(t, s.comments.AddComment(ctx, &entity.Comment{RecipeID: id, UserID: "u1", Rating: 5, Text: "better"}))

	average, err = s.comments.AverageRating(ctx, id)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, average, 1e-9)

	summary, err := s.recipes.GetRecipe(ctx, id, "u1")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, summary.AverageRating, 1e-9)
	assert.False(t, summary.Favorited)
}
