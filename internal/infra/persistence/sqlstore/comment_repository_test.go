package sqlstore

import (
	"context"
	"testing"

	"recipefinder/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	pasta := seedRecipe(t, db, &entity.Recipe{Name: "Pasta"})
	sushi := seedRecipe(t, db, &entity.Recipe{Name: "Sushi"})

	average, err := repo.AverageRating(ctx, pasta.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, average)

	first := &entity.Comment{Rating: 3.0, Text: "ok", UserID: "alice", RecipeID: pasta.ID}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotZero(t, first.ID)
	require.NoError(t, repo.Create(ctx, &entity.Comment{Rating: 5.0, Text: "great", UserID: "alice", RecipeID: pasta.ID}))
	require.NoError(t, repo.Create(ctx, &entity.Comment{Rating: 1.0, Text: "no", UserID: "bob", RecipeID: sushi.ID}))

	average, err = repo.AverageRating(ctx, pasta.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, average, 1e-9)

	byRecipe, err := repo.FindByRecipe(ctx, pasta.ID)
	require.NoError(t, err)
	require.Len(t, byRecipe, 2)
	assert.Equal(t, "ok", byRecipe[0].Text)
	assert.Equal(t, "great", byRecipe[1].Text)

	byUser, err := repo.FindByUser(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, sushi.ID, byUser[0].RecipeID)
}
