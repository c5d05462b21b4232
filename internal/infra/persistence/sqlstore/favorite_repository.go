package sqlstore

import (
	"context"

	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/repository"
	"recipefinder/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// Create persists a favorite inside its own savepoint.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := &model.FavoriteModel{
		UserID:    favorite.UserID,
		RecipeID:  favorite.RecipeID,
		CreatedAt: favorite.CreatedAt,
	}

	if err := withSavepoint(ctx, repo.db, func(tx *gorm.DB) error {
		return tx.Create(favoriteM).Error
	}); err != nil {
		return translateWriteError(err, domainerrors.ErrFavoriteExists, "failed to create favorite")
	}

	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// Delete removes a favorite row.
func (repo *favoriteRepository) Delete(ctx context.Context, userID string, recipeID int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&model.FavoriteModel{})

	if result.Error != nil {
		return domainerrors.NewQueryFailure(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrFavoriteNotFound
	}

	return nil
}

// Exists reports whether the (user, recipe) favorite row exists.
func (repo *favoriteRepository) Exists(ctx context.Context, userID string, recipeID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewQueryFailure(err, "failed to check favorite")
	}

	return count > 0, nil
}

// CountByRecipe counts the favorites of a recipe.
func (repo *favoriteRepository) CountByRecipe(ctx context.Context, recipeID int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewQueryFailure(err, "failed to count favorites")
	}

	return count, nil
}
