package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "recipefinder/internal/delivery/context"
	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/repository"
	"recipefinder/internal/domain/service"
	"recipefinder/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	txManager   repository.TransactionManager
	commentRepo repository.CommentRepository
	publisher   service.EventPublisher
	metrics     service.Metrics
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CommentRepo repository.CommentRepository
	Publisher   service.EventPublisher
	Metrics     service.Metrics
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		txManager:   params.TxManager,
		commentRepo: params.CommentRepo,
		publisher:   params.Publisher,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddComment stores a comment after checking that its recipe exists.
func (srv *commentService) AddComment(ctx context.Context, comment *entity.Comment) error {
	if comment.UserID == "" {
		return domainerrors.ErrUnauthenticated
	}
	comment.Text = strings.TrimSpace(comment.Text)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewRecipeRepository().FindByID(ctx, comment.RecipeID); err != nil {
			return errors.Wrap(err, "failed to find recipe")
		}

		if err := repoFactory.NewCommentRepository().Create(ctx, comment); err != nil {
			return errors.Wrap(err, "failed to create comment")
		}

		return nil
	})
	srv.metrics.ObserveMutation("add_comment", err)
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Comment added",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("recipe_id", comment.RecipeID),
		slog.String("user_id", comment.UserID),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.RecipeEvent{
		Type:     service.EventCommentAdded,
		RecipeID: comment.RecipeID,
		UserID:   comment.UserID,
		Rating:   comment.Rating,
	})

	return nil
}

// ListByRecipe lists the comments of a recipe, oldest first.
func (srv *commentService) ListByRecipe(ctx context.Context, recipeID int64) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.FindByRecipe(ctx, recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipe comments")
	}

	return comments, nil
}

// ListByUser lists the comments written by a user, oldest first.
func (srv *commentService) ListByUser(ctx context.Context, userID string) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user comments")
	}

	return comments, nil
}

// AverageRating returns the mean rating of a recipe's comments.
func (srv *commentService) AverageRating(ctx context.Context, recipeID int64) (float64, error) {
	average, err := srv.commentRepo.AverageRating(ctx, recipeID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to compute average rating")
	}

	return average, nil
}
