package sqlstore

import (
	"context"
	"testing"

	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	recipe := seedRecipe(t, db, &entity.Recipe{Name: "Pasta"})

	count, err := repo.CountByRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	exists, err := repo.Exists(ctx, "alice", recipe.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, &entity.Favorite{UserID: "alice", RecipeID: recipe.ID}))
	require.NoError(t, repo.Create(ctx, &entity.Favorite{UserID: "bob", RecipeID: recipe.ID}))

	err = repo.Create(ctx, &entity.Favorite{UserID: "alice", RecipeID: recipe.ID})
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteExists)

	exists, err = repo.Exists(ctx, "alice", recipe.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	count, err = repo.CountByRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.Delete(ctx, "alice", recipe.ID))
	assert.ErrorIs(t, repo.Delete(ctx, "alice", recipe.ID), domainerrors.ErrFavoriteNotFound)

	count, err = repo.CountByRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
