package sqlstore

import (
	"context"
	"slices"
	"strings"

	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/repository"
	"recipefinder/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// recipeRepository implements the repository.RecipeRepository interface.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{
		db: db,
	}
}

// Create persists a new recipe and sets its generated ID.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	err := withSavepoint(ctx, repo.db, func(tx *gorm.DB) error {
		return tx.Omit("UsedIngredients").Create(recipeM).Error
	})
	if err != nil {
		return translateWriteError(err, domainerrors.ErrRecipeNameTaken, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt

	return nil
}

// FindByID retrieves a recipe by its ID.
func (repo *recipeRepository) FindByID(ctx context.Context, id int64) (*entity.Recipe, error) {
	var recipeM model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recipeM).Error; err != nil {
		return nil, translateReadError(err, domainerrors.ErrRecipeNotFound, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

// FindByName retrieves the recipe with exactly this name.
func (repo *recipeRepository) FindByName(ctx context.Context, name string) (*entity.Recipe, error) {
	var recipeM model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&recipeM).Error; err != nil {
		return nil, translateReadError(err, domainerrors.ErrRecipeNotFound, "failed to find recipe by name")
	}

	return toRecipeDomain(&recipeM), nil
}

// FindByNameFragment retrieves the lowest-ID recipe whose name contains fragment.
func (repo *recipeRepository) FindByNameFragment(ctx context.Context, fragment string) (*entity.Recipe, error) {
	var recipeM model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Where(containsClause(repo.db, "name"), containsPattern(fragment), likeEscapeChar).
		First(&recipeM).Error; err != nil {
		return nil, translateReadError(err, domainerrors.ErrRecipeNotFound, "failed to search recipe by name")
	}

	return toRecipeDomain(&recipeM), nil
}

// FindByOwner lists the recipes published by a user.
func (repo *recipeRepository) FindByOwner(ctx context.Context, userID string) ([]*entity.Recipe, error) {
	return repo.list(ctx, "failed to find recipes by owner", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("recipes.owner_user_id = ?", userID)
	})
}

// FindByType lists the recipes of a food type.
func (repo *recipeRepository) FindByType(ctx context.Context, foodType string) ([]*entity.Recipe, error) {
	return repo.list(ctx, "failed to find recipes by type", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("recipes.type = ?", foodType)
	})
}

// FindFavoritedBy lists the recipes a user has favorited.
func (repo *recipeRepository) FindFavoritedBy(ctx context.Context, userID string) ([]*entity.Recipe, error) {
	return repo.list(ctx, "failed to find favorite recipes", func(tx *gorm.DB) *gorm.DB {
		return tx.Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
			Where("favorites.user_id = ?", userID)
	})
}

// Filter lists the recipes matching every active predicate of q.
//
// The ingredient predicate is a semi-join on used_ingredients, so a recipe that
// matches through several ingredients is returned once and recipes without
// ingredients are kept when the predicate is inactive.
func (repo *recipeRepository) Filter(ctx context.Context, q repository.RecipeQuery) ([]*entity.Recipe, error) {
	return repo.list(ctx, "failed to filter recipes", func(tx *gorm.DB) *gorm.DB {
		if q.Name != "" {
			tx = tx.Where(containsClause(repo.db, "recipes.name"), containsPattern(q.Name), likeEscapeChar)
		}
		if len(q.Types) > 0 {
			tx = tx.Where("recipes.type IN ?", q.Types)
		}
		// Zero means no calorie limit.
		if q.MaxCalories != 0 {
			tx = tx.Where("recipes.calories <= ?", q.MaxCalories)
		}
		if len(q.IngredientNames) > 0 {
			usedBy := repo.db.WithContext(ctx).
				Model(&model.UsedIngredientModel{}).
				Select("used_ingredients.recipe_id").
				Joins("JOIN ingredients ON ingredients.id = used_ingredients.ingredient_id").
				Where("ingredients.name IN ?", q.IngredientNames)
			tx = tx.Where("recipes.id IN (?)", usedBy)
		}

		return tx
	})
}

// list runs a recipe query and returns the rows in ordinal name order.
func (repo *recipeRepository) list(ctx context.Context, details string, scope func(tx *gorm.DB) *gorm.DB) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	if err := scope(repo.db.WithContext(ctx).Model(&model.RecipeModel{})).
		Select("recipes.*").
		Order("recipes.name ASC").
		Find(&recipeModels).Error; err != nil {
		return nil, domainerrors.NewQueryFailure(err, details)
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	// The database collation may not be byte-wise, so enforce ordinal order here.
	slices.SortStableFunc(recipes, func(a, b *entity.Recipe) int {
		return strings.Compare(a.Name, b.Name)
	})

	return recipes, nil
}

// --- Mapper Functions ---

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Method:      data.Method,
		OwnerUserID: data.OwnerUserID,
		Type:        data.Type,
		Calories:    data.Calories,
		ImageRef:    data.ImageRef,
		CreatedAt:   data.CreatedAt,
	}
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Method:      data.Method,
		OwnerUserID: data.OwnerUserID,
		Type:        data.Type,
		Calories:    data.Calories,
		ImageRef:    data.ImageRef,
		CreatedAt:   data.CreatedAt,
	}
}
