package impl

import (
	"context"
	"log/slog"

	deliverycontext "recipefinder/internal/delivery/context"
	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/repository"
	"recipefinder/internal/domain/service"
	"recipefinder/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager    repository.TransactionManager
	favoriteRepo repository.FavoriteRepository
	publisher    service.EventPublisher
	metrics      service.Metrics
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FavoriteRepo repository.FavoriteRepository
	Publisher    service.EventPublisher
	Metrics      service.Metrics
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:    params.TxManager,
		favoriteRepo: params.FavoriteRepo,
		publisher:    params.Publisher,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleFavorite deletes the favorite when present and creates it otherwise.
// A toggle that loses a race against a concurrent toggle of the same pair
// reports the state the other writer produced.
func (srv *favoriteService) ToggleFavorite(ctx context.Context, userID string, recipeID int64) (entity.FavoriteState, error) {
	if userID == "" {
		return "", domainerrors.ErrUnauthenticated
	}

	var state entity.FavoriteState

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewRecipeRepository().FindByID(ctx, recipeID); err != nil {
			return errors.Wrap(err, "failed to find recipe")
		}

		favoriteRepo := repoFactory.NewFavoriteRepository()

		exists, err := favoriteRepo.Exists(ctx, userID, recipeID)
		if err != nil {
			return errors.Wrap(err, "failed to check favorite")
		}

		if exists {
			state, err = removeFavorite(ctx, favoriteRepo, userID, recipeID)
		} else {
			state, err = addFavorite(ctx, favoriteRepo, userID, recipeID)
		}

		return err
	})
	srv.metrics.ObserveMutation("toggle_favorite", err)
	if err != nil {
		return "", err
	}

	srv.log(ctx).Info("Favorite toggled",
		slog.String("user_id", userID),
		slog.Int64("recipe_id", recipeID),
		slog.String("state", string(state)),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.RecipeEvent{
		Type:     service.EventFavoriteToggled,
		RecipeID: recipeID,
		UserID:   userID,
		State:    string(state),
	})

	return state, nil
}

func addFavorite(ctx context.Context, repo repository.FavoriteRepository, userID string, recipeID int64) (entity.FavoriteState, error) {
	err := repo.Create(ctx, &entity.Favorite{UserID: userID, RecipeID: recipeID})
	switch {
	case err == nil, errors.Is(err, domainerrors.ErrFavoriteExists):
		return entity.FavoriteStateFavorited, nil
	default:
		return "", errors.Wrap(err, "failed to add favorite")
	}
}

func removeFavorite(ctx context.Context, repo repository.FavoriteRepository, userID string, recipeID int64) (entity.FavoriteState, error) {
	err := repo.Delete(ctx, userID, recipeID)
	switch {
	case err == nil, errors.Is(err, domainerrors.ErrFavoriteNotFound):
		return entity.FavoriteStateNotFavorited, nil
	default:
		return "", errors.Wrap(err, "failed to remove favorite")
	}
}

// IsFavorited reports whether the user has favorited the recipe.
func (srv *favoriteService) IsFavorited(ctx context.Context, userID string, recipeID int64) (bool, error) {
	if userID == "" {
		return false, nil
	}

	exists, err := srv.favoriteRepo.Exists(ctx, userID, recipeID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return exists, nil
}

// FavoriteCount counts the favorites of a recipe.
func (srv *favoriteService) FavoriteCount(ctx context.Context, recipeID int64) (int64, error) {
	count, err := srv.favoriteRepo.CountByRecipe(ctx, recipeID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count favorites")
	}

	return count, nil
}
