package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "recipefinder/internal/delivery/context"
	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/repository"
	"recipefinder/internal/domain/service"
	"recipefinder/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager    repository.TransactionManager
	recipeRepo   repository.RecipeRepository
	usedRepo     repository.UsedIngredientRepository
	favoriteRepo repository.FavoriteRepository
	commentRepo  repository.CommentRepository
	ingredients  usecase.IngredientUsecase
	qrCode       service.QRCodeService
	publisher    service.EventPublisher
	metrics      service.Metrics
	logger       *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	RecipeRepo   repository.RecipeRepository
	UsedRepo     repository.UsedIngredientRepository
	FavoriteRepo repository.FavoriteRepository
	CommentRepo  repository.CommentRepository
	Ingredients  usecase.IngredientUsecase
	QRCode       service.QRCodeService
	Publisher    service.EventPublisher
	Metrics      service.Metrics
	Logger       *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		txManager:    params.TxManager,
		recipeRepo:   params.RecipeRepo,
		usedRepo:     params.UsedRepo,
		favoriteRepo: params.FavoriteRepo,
		commentRepo:  params.CommentRepo,
		ingredients:  params.Ingredients,
		qrCode:       params.QRCode,
		publisher:    params.Publisher,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FilterRecipes expands the ingredient fragments and runs the combined filter.
func (srv *recipeService) FilterRecipes(ctx context.Context, filter entity.RecipeFilter) ([]*entity.Recipe, error) {
	if filter.MaxCalories < 0 {
		return nil, domainerrors.ErrInvalidFilter.WithDetails("maxCalories must not be negative")
	}

	start := time.Now()

	ingredientNames, err := srv.ingredients.ResolveFragments(ctx, filter.IngredientFragments)
	if err != nil {
		return nil, err
	}

	query := repository.RecipeQuery{
		Name:            filter.Name,
		Types:           nonBlank(filter.Types),
		MaxCalories:     filter.MaxCalories,
		IngredientNames: ingredientNames,
	}
	if strings.TrimSpace(query.Name) == "" {
		query.Name = ""
	}

	recipes, err := srv.recipeRepo.Filter(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter recipes")
	}

	elapsed := time.Since(start)
	srv.metrics.ObserveFilter(elapsed, len(recipes))
	srv.log(ctx).Debug("Filtered recipes",
		slog.String("name", query.Name),
		slog.Any("types", query.Types),
		slog.Int("max_calories", query.MaxCalories),
		slog.Any("ingredients", ingredientNames),
		slog.Int("results", len(recipes)),
		slog.Duration("elapsed", elapsed),
	)

	return recipes, nil
}

// FilterRecipeSummaries runs FilterRecipes and decorates each result with its aggregates.
func (srv *recipeService) FilterRecipeSummaries(ctx context.Context, filter entity.RecipeFilter) ([]*entity.RecipeSummary, error) {
	recipes, err := srv.FilterRecipes(ctx, filter)
	if err != nil {
		return nil, err
	}

	return srv.summarizeAll(ctx, recipes)
}

// GetRecipe assembles a recipe with its ingredients, aggregates and the caller's favorite state.
func (srv *recipeService) GetRecipe(ctx context.Context, id int64, callerID string) (*entity.RecipeDetail, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recipe")
	}

	ingredients, err := srv.usedRepo.FindByRecipe(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipe ingredients")
	}

	summary, err := srv.Summarize(ctx, recipe)
	if err != nil {
		return nil, err
	}

	detail := &entity.RecipeDetail{
		RecipeSummary: *summary,
		Ingredients:   ingredients,
	}

	if callerID != "" {
		detail.Favorited, err = srv.favoriteRepo.Exists(ctx, callerID, id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check favorite")
		}
	}

	return detail, nil
}

// FindByName returns the recipe with exactly this name.
func (srv *recipeService) FindByName(ctx context.Context, name string) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByName(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recipe by name")
	}

	return recipe, nil
}

// SearchByName returns one recipe whose name contains fragment.
func (srv *recipeService) SearchByName(ctx context.Context, fragment string) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByNameFragment(ctx, fragment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search recipe by name")
	}

	return recipe, nil
}

// ListByOwner lists the recipes published by a user.
func (srv *recipeService) ListByOwner(ctx context.Context, userID string) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes by owner")
	}

	return recipes, nil
}

// ListByType lists the recipes of a food type.
func (srv *recipeService) ListByType(ctx context.Context, foodType string) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.FindByType(ctx, foodType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes by type")
	}

	return recipes, nil
}

// ListFavorites lists the recipes a user has favorited.
func (srv *recipeService) ListFavorites(ctx context.Context, userID string) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.FindFavoritedBy(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorite recipes")
	}

	return recipes, nil
}

// Summarize computes the average rating and favorite count of a recipe.
func (srv *recipeService) Summarize(ctx context.Context, recipe *entity.Recipe) (*entity.RecipeSummary, error) {
	average, err := srv.commentRepo.AverageRating(ctx, recipe.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute average rating")
	}

	favorites, err := srv.favoriteRepo.CountByRecipe(ctx, recipe.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count favorites")
	}

	return &entity.RecipeSummary{
		Recipe:        recipe,
		AverageRating: average,
		FavoriteCount: favorites,
	}, nil
}

func (srv *recipeService) summarizeAll(ctx context.Context, recipes []*entity.Recipe) ([]*entity.RecipeSummary, error) {
	summaries := make([]*entity.RecipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		summary, err := srv.Summarize(ctx, recipe)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// CreateRecipe stores the recipe and all of its ingredient lines atomically.
func (srv *recipeService) CreateRecipe(ctx context.Context, recipe *entity.Recipe, lines []usecase.IngredientLine) (int64, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewRecipeRepository().Create(ctx, recipe); err != nil {
			return errors.Wrap(err, "failed to create recipe")
		}

		ingredientRepo := repoFactory.NewIngredientRepository()
		usedRepo := repoFactory.NewUsedIngredientRepository()
		for _, line := range lines {
			if _, err := attachIngredient(ctx, ingredientRepo, usedRepo, recipe.ID, line); err != nil {
				return err
			}
		}

		return nil
	})
	srv.metrics.ObserveMutation("create_recipe", err)
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("Recipe created",
		slog.Int64("recipe_id", recipe.ID),
		slog.String("name", recipe.Name),
		slog.Int("ingredients", len(lines)),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.RecipeEvent{
		Type:       service.EventRecipeCreated,
		RecipeID:   recipe.ID,
		RecipeName: recipe.Name,
		UserID:     recipe.OwnerUserID,
	})

	return recipe.ID, nil
}

// AddUsedIngredient finds or creates the ingredient and attaches it to the recipe.
func (srv *recipeService) AddUsedIngredient(ctx context.Context, recipeID int64, ingredientName, quantity string) (*entity.RecipeIngredient, error) {
	var added *entity.RecipeIngredient

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewRecipeRepository().FindByID(ctx, recipeID); err != nil {
			return errors.Wrap(err, "failed to find recipe")
		}

		var err error
		added, err = attachIngredient(ctx,
			repoFactory.NewIngredientRepository(),
			repoFactory.NewUsedIngredientRepository(),
			recipeID,
			usecase.IngredientLine{Name: ingredientName, Quantity: quantity},
		)

		return err
	})
	srv.metrics.ObserveMutation("add_used_ingredient", err)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.RecipeEvent{
		Type:     service.EventIngredientAdded,
		RecipeID: recipeID,
	})

	return added, nil
}

// ShareQRCode renders the share code of an existing recipe.
func (srv *recipeService) ShareQRCode(ctx context.Context, recipeID int64) ([]byte, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recipe")
	}

	png, err := srv.qrCode.GenerateRecipeQR(recipe.ID, recipe.Name)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return png, nil
}

// attachIngredient resolves line.Name and inserts the (recipe, ingredient) row.
func attachIngredient(
	ctx context.Context,
	ingredientRepo repository.IngredientRepository,
	usedRepo repository.UsedIngredientRepository,
	recipeID int64,
	line usecase.IngredientLine,
) (*entity.RecipeIngredient, error) {
	ingredient, err := findOrCreateIngredient(ctx, ingredientRepo, line.Name)
	if err != nil {
		return nil, err
	}

	used := &entity.UsedIngredient{
		RecipeID:     recipeID,
		IngredientID: ingredient.ID,
		Quantity:     line.Quantity,
	}
	if err := usedRepo.Create(ctx, used); err != nil {
		return nil, errors.Wrapf(err, "failed to add ingredient %q", ingredient.Name)
	}

	return &entity.RecipeIngredient{
		IngredientID: ingredient.ID,
		Name:         ingredient.Name,
		Quantity:     line.Quantity,
	}, nil
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}
