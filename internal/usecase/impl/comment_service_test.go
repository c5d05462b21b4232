package impl

import (
	"context"
	"testing"

	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/service"
	mockRepo "recipefinder/internal/mocks/repository"
	mockService "recipefinder/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCommentService_AddComment(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewCommentService(CommentServiceParams{
		TxManager:   txManager,
		CommentRepo: commentRepo,
		Publisher:   publisher,
		Metrics:     newRecordingMetrics(),
		Logger:      newDiscardLogger(),
	})

	expectTransaction(txManager, factory)
	factory.EXPECT().NewRecipeRepository().Return(recipeRepo).Once()
	factory.EXPECT().NewCommentRepository().Return(commentRepo).Once()
	recipeRepo.EXPECT().FindByID(ctx, int64(2)).Return(&entity.Recipe{ID: 2}, nil).Once()
	commentRepo.EXPECT().Create(ctx, mock.MatchedBy(func(c *entity.Comment) bool {
		return c.Text == "Great" && c.Rating == 5
	})).RunAndReturn(func(_ context.Context, c *entity.Comment) error {
		c.ID = 40

		return nil
	}).Once()
	publisher.EXPECT().PublishRecipeEvent(ctx, mock.MatchedBy(func(e *service.RecipeEvent) bool {
		return e.Type == service.EventCommentAdded && e.Rating == 5 && e.UserID == "u1"
	})).Return(nil).Once()

	comment := &entity.Comment{Rating: 5, Text: "  Great ", UserID: "u1", RecipeID: 2}
	err := svc.AddComment(ctx, comment)

	require.NoError(t, err)
	assert.Equal(t, int64(40), comment.ID)
}

func TestCommentService_AddComment_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous caller", func(t *testing.T) {
		svc := NewCommentService(CommentServiceParams{
			TxManager: mockRepo.NewMockTransactionManager(t),
			Metrics:   newRecordingMetrics(),
			Logger:    newDiscardLogger(),
		})

		err := svc.AddComment(ctx, &entity.Comment{RecipeID: 2, Rating: 3})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("unknown recipe", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		factory := mockRepo.NewMockRepositoryFactory(t)
		recipeRepo := mockRepo.NewMockRecipeRepository(t)
		metrics := newRecordingMetrics()

		svc := NewCommentService(CommentServiceParams{
			TxManager: txManager,
			Metrics:   metrics,
			Logger:    newDiscardLogger(),
		})

		expectTransaction(txManager, factory)
		factory.EXPECT().NewRecipeRepository().Return(recipeRepo).Once()
		recipeRepo.EXPECT().FindByID(ctx, int64(2)).Return(nil, domainerrors.ErrRecipeNotFound).Once()

		err := svc.AddComment(ctx, &entity.Comment{RecipeID: 2, Rating: 3, UserID: "u1"})

		require.Error(t, err)
		assert.True(t, domainerrors.IsNotFound(err))
		assert.Len(t, metrics.mutationErrors("add_comment"), 1)
	})
}

func TestCommentService_Reads(t *testing.T) {
	ctx := context.Background()
	commentRepo := mockRepo.NewMockCommentRepository(t)
	svc := NewCommentService(CommentServiceParams{
		CommentRepo: commentRepo,
		Metrics:     newRecordingMetrics(),
		Logger:      newDiscardLogger(),
	})

	byRecipe := []*entity.Comment{{ID: 1, RecipeID: 2, Rating: 3}, {ID: 2, RecipeID: 2, Rating: 5}}
	byUser := []*entity.Comment{{ID: 1, UserID: "u1"}}

	commentRepo.EXPECT().FindByRecipe(ctx, int64(2)).Return(byRecipe, nil).Once()
	commentRepo.EXPECT().FindByUser(ctx, "u1").Return(byUser, nil).Once()
	commentRepo.EXPECT().AverageRating(ctx, int64(2)).Return(4.0, nil).Once()

	comments, err := svc.ListByRecipe(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, byRecipe, comments)

	comments, err = svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, byUser, comments)

	average, err := svc.AverageRating(ctx, 2)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, average, 1e-9)
}
