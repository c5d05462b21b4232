package sqlstore

import (
	"context"

	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/repository"
	"recipefinder/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// ingredientRepository implements the repository.IngredientRepository interface.
type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository is the constructor for ingredientRepository.
func NewIngredientRepository(db *gorm.DB) repository.IngredientRepository {
	return &ingredientRepository{
		db: db,
	}
}

// Create persists a new ingredient. The insert runs in its own savepoint so a
// duplicate name can be recovered from inside an outer transaction.
func (repo *ingredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	ingredientM := &model.IngredientModel{Name: ingredient.Name}

	if err := withSavepoint(ctx, repo.db, func(tx *gorm.DB) error {
		return tx.Create(ingredientM).Error
	}); err != nil {
		return translateWriteError(err, domainerrors.ErrIngredientNameTaken, "failed to create ingredient")
	}

	ingredient.ID = ingredientM.ID

	return nil
}

// FindByName retrieves the ingredient with exactly this name.
func (repo *ingredientRepository) FindByName(ctx context.Context, name string) (*entity.Ingredient, error) {
	var ingredientM model.IngredientModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&ingredientM).Error; err != nil {
		return nil, translateReadError(err, domainerrors.ErrIngredientNotFound, "failed to find ingredient by name")
	}

	return toIngredientDomain(&ingredientM), nil
}

// SearchByFragment lists the ingredients whose name contains fragment.
func (repo *ingredientRepository) SearchByFragment(ctx context.Context, fragment string) ([]*entity.Ingredient, error) {
	var ingredientModels []*model.IngredientModel

	if err := repo.db.WithContext(ctx).
		Where(containsClause(repo.db, "name"), containsPattern(fragment), likeEscapeChar).
		Order("name ASC").
		Find(&ingredientModels).Error; err != nil {
		return nil, domainerrors.NewQueryFailure(err, "failed to search ingredients")
	}

	return toIngredientsDomain(ingredientModels), nil
}

// FindAll lists every ingredient.
func (repo *ingredientRepository) FindAll(ctx context.Context) ([]*entity.Ingredient, error) {
	var ingredientModels []*model.IngredientModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&ingredientModels).Error; err != nil {
		return nil, domainerrors.NewQueryFailure(err, "failed to list ingredients")
	}

	return toIngredientsDomain(ingredientModels), nil
}

// usedIngredientRepository implements the repository.UsedIngredientRepository interface.
type usedIngredientRepository struct {
	db *gorm.DB
}

// NewUsedIngredientRepository is the constructor for usedIngredientRepository.
func NewUsedIngredientRepository(db *gorm.DB) repository.UsedIngredientRepository {
	return &usedIngredientRepository{
		db: db,
	}
}

// Create persists the association. An existing pair is never updated in place.
func (repo *usedIngredientRepository) Create(ctx context.Context, used *entity.UsedIngredient) error {
	usedM := &model.UsedIngredientModel{
		RecipeID:     used.RecipeID,
		IngredientID: used.IngredientID,
		Quantity:     used.Quantity,
	}

	if err := withSavepoint(ctx, repo.db, func(tx *gorm.DB) error {
		return tx.Omit("Ingredient").Create(usedM).Error
	}); err != nil {
		return translateWriteError(err, domainerrors.ErrIngredientAlreadyUsed, "failed to add ingredient to recipe")
	}

	return nil
}

// FindByRecipe lists a recipe's ingredients joined with their names.
func (repo *usedIngredientRepository) FindByRecipe(ctx context.Context, recipeID int64) ([]*entity.RecipeIngredient, error) {
	var rows []*entity.RecipeIngredient

	if err := repo.db.WithContext(ctx).
		Model(&model.UsedIngredientModel{}).
		Select("used_ingredients.ingredient_id AS ingredient_id, ingredients.name AS name, used_ingredients.quantity AS quantity").
		Joins("JOIN ingredients ON ingredients.id = used_ingredients.ingredient_id").
		Where("used_ingredients.recipe_id = ?", recipeID).
		Order("ingredients.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewQueryFailure(err, "failed to list recipe ingredients")
	}

	if rows == nil {
		rows = []*entity.RecipeIngredient{}
	}

	return rows, nil
}

// --- Mapper Functions ---

// toIngredientDomain converts a GORM IngredientModel to a domain Ingredient entity.
func toIngredientDomain(data *model.IngredientModel) *entity.Ingredient {
	if data == nil {
		return nil
	}

	return &entity.Ingredient{
		ID:   data.ID,
		Name: data.Name,
	}
}

func toIngredientsDomain(models []*model.IngredientModel) []*entity.Ingredient {
	ingredients := make([]*entity.Ingredient, 0, len(models))
	for _, ingredientM := range models {
		ingredients = append(ingredients, toIngredientDomain(ingredientM))
	}

	return ingredients
}
