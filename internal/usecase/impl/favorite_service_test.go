package impl

import (
	"context"
	"testing"

	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/service"
	mockRepo "recipefinder/internal/mocks/repository"
	mockService "recipefinder/internal/mocks/service"
	"recipefinder/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixtures struct {
	service      usecase.FavoriteUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	recipeRepo   *mockRepo.MockRecipeRepository
	favoriteRepo *mockRepo.MockFavoriteRepository
	publisher    *mockService.MockEventPublisher
	metrics      *recordingMetrics
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	f := favoriteServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		recipeRepo:   mockRepo.NewMockRecipeRepository(t),
		favoriteRepo: mockRepo.NewMockFavoriteRepository(t),
		publisher:    mockService.NewMockEventPublisher(t),
		metrics:      newRecordingMetrics(),
	}

	f.service = NewFavoriteService(FavoriteServiceParams{
		TxManager:    f.txManager,
		FavoriteRepo: f.favoriteRepo,
		Publisher:    f.publisher,
		Metrics:      f.metrics,
		Logger:       newDiscardLogger(),
	})

	return f
}

// expectToggleTransaction wires the factory to the fixture repositories for one toggle.
func (f favoriteServiceFixtures) expectToggleTransaction(ctx context.Context, recipeID int64) {
	expectTransaction(f.txManager, f.factory)
	f.factory.EXPECT().NewRecipeRepository().Return(f.recipeRepo).Once()
	f.recipeRepo.EXPECT().FindByID(ctx, recipeID).Return(&entity.Recipe{ID: recipeID}, nil).Once()
	f.factory.EXPECT().NewFavoriteRepository().Return(f.favoriteRepo).Once()
}

func (f favoriteServiceFixtures) expectToggleEvent(ctx context.Context, state entity.FavoriteState) {
	f.publisher.EXPECT().PublishRecipeEvent(ctx, mock.MatchedBy(func(e *service.RecipeEvent) bool {
		return e.Type == service.EventFavoriteToggled && e.State == string(state)
	})).Return(nil).Once()
}

func TestFavoriteService_ToggleFavorite_Adds(t *testing.T) {
	f := createTestFavoriteService(t)
	ctx := context.Background()

	f.expectToggleTransaction(ctx, 3)
	f.favoriteRepo.EXPECT().Exists(ctx, "u1", int64(3)).Return(false, nil).Once()
	f.favoriteRepo.EXPECT().Create(ctx, &entity.Favorite{UserID: "u1", RecipeID: 3}).Return(nil).Once()
	f.expectToggleEvent(ctx, entity.FavoriteStateFavorited)

	state, err := f.service.ToggleFavorite(ctx, "u1", 3)

	require.NoError(t, err)
	assert.Equal(t, entity.FavoriteStateFavorited, state)
	assert.True(t, state.IsFavorited())
}

func TestFavoriteService_ToggleFavorite_Removes(t *testing.T) {
	f := createTestFavoriteService(t)
	ctx := context.Background()

	f.expectToggleTransaction(ctx, 3)
	f.favoriteRepo.EXPECT().Exists(ctx, "u1", int64(3)).Return(true, nil).Once()
	f.favoriteRepo.EXPECT().Delete(ctx, "u1", int64(3)).Return(nil).Once()
	f.expectToggleEvent(ctx, entity.FavoriteStateNotFavorited)

	state, err := f.service.ToggleFavorite(ctx, "u1", 3)

	require.NoError(t, err)
	assert.Equal(t, entity.FavoriteStateNotFavorited, state)
}

func TestFavoriteService_ToggleFavorite_LostRaces(t *testing.T) {
	t.Run("concurrent insert wins", func(t *testing.T) {
		f := createTestFavoriteService(t)
		ctx := context.Background()

		f.expectToggleTransaction(ctx, 3)
		f.favoriteRepo.EXPECT().Exists(ctx, "u1", int64(3)).Return(false, nil).Once()
		f.favoriteRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrFavoriteExists).Once()
		f.expectToggleEvent(ctx, entity.FavoriteStateFavorited)

		state, err := f.service.ToggleFavorite(ctx, "u1", 3)

		require.NoError(t, err)
		assert.Equal(t, entity.FavoriteStateFavorited, state)
	})

	t.Run("concurrent delete wins", func(t *testing.T) {
		f := createTestFavoriteService(t)
		ctx := context.Background()

		f.expectToggleTransaction(ctx, 3)
		f.favoriteRepo.EXPECT().Exists(ctx, "u1", int64(3)).Return(true, nil).Once()
		f.favoriteRepo.EXPECT().Delete(ctx, "u1", int64(3)).Return(domainerrors.ErrFavoriteNotFound).Once()
		f.expectToggleEvent(ctx, entity.FavoriteStateNotFavorited)

		state, err := f.service.ToggleFavorite(ctx, "u1", 3)

		require.NoError(t, err)
		assert.Equal(t, entity.FavoriteStateNotFavorited, state)
	})
}

func TestFavoriteService_ToggleFavorite_Errors(t *testing.T) {
	t.Run("anonymous caller", func(t *testing.T) {
		f := createTestFavoriteService(t)

		_, err := f.service.ToggleFavorite(context.Background(), "", 3)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("unknown recipe", func(t *testing.T) {
		f := createTestFavoriteService(t)
		ctx := context.Background()

		expectTransaction(f.txManager, f.factory)
		f.factory.EXPECT().NewRecipeRepository().Return(f.recipeRepo).Once()
		f.recipeRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, domainerrors.ErrRecipeNotFound).Once()

		_, err := f.service.ToggleFavorite(ctx, "u1", 3)

		require.Error(t, err)
		assert.True(t, domainerrors.IsNotFound(err))
		require.Len(t, f.metrics.mutationErrors("toggle_favorite"), 1)
	})

	t.Run("store failure", func(t *testing.T) {
		f := createTestFavoriteService(t)
		ctx := context.Background()

		f.expectToggleTransaction(ctx, 3)
		f.favoriteRepo.EXPECT().Exists(ctx, "u1", int64(3)).Return(false, nil).Once()
		f.favoriteRepo.EXPECT().Create(ctx, mock.Anything).
			Return(domainerrors.NewQueryFailure(errors.New("disk full"), "failed to create favorite")).Once()

		_, err := f.service.ToggleFavorite(ctx, "u1", 3)

		require.Error(t, err)
		assert.True(t, domainerrors.IsQueryFailure(err))
	})
}

func TestFavoriteService_Reads(t *testing.T) {
	f := createTestFavoriteService(t)
	ctx := context.Background()

	f.favoriteRepo.EXPECT().Exists(ctx, "u1", int64(3)).Return(true, nil).Once()
	f.favoriteRepo.EXPECT().CountByRecipe(ctx, int64(3)).Return(int64(5), nil).Once()

	favorited, err := f.service.IsFavorited(ctx, "u1", 3)
	require.NoError(t, err)
	assert.True(t, favorited)

	anonymous, err := f.service.IsFavorited(ctx, "", 3)
	require.NoError(t, err)
	assert.False(t, anonymous)

	count, err := f.service.FavoriteCount(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
