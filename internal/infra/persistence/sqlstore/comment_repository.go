package sqlstore

import (
	"context"

	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/repository"
	"recipefinder/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

// Create persists a new comment.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrConstraintViolation, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// FindByRecipe lists the comments of a recipe.
func (repo *commentRepository) FindByRecipe(ctx context.Context, recipeID int64) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel

	if err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at ASC, id ASC").
		Find(&commentModels).Error; err != nil {
		return nil, domainerrors.NewQueryFailure(err, "failed to find comments by recipe")
	}

	return toCommentsDomain(commentModels), nil
}

// FindByUser lists the comments written by a user.
func (repo *commentRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&commentModels).Error; err != nil {
		return nil, domainerrors.NewQueryFailure(err, "failed to find comments by user")
	}

	return toCommentsDomain(commentModels), nil
}

// AverageRating computes the mean rating of a recipe. No comments yields 0.
func (repo *commentRepository) AverageRating(ctx context.Context, recipeID int64) (float64, error) {
	var average float64

	if err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Select("COALESCE(AVG(rating), 0)").
		Where("recipe_id = ?", recipeID).
		Scan(&average).Error; err != nil {
		return 0, domainerrors.NewQueryFailure(err, "failed to compute average rating")
	}

	return average, nil
}

// --- Mapper Functions ---

// toCommentDomain converts a GORM CommentModel to a domain Comment entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		Rating:    data.Rating,
		Text:      data.Text,
		UserID:    data.UserID,
		RecipeID:  data.RecipeID,
		CreatedAt: data.CreatedAt,
	}
}

// fromCommentDomain converts a domain Comment entity to a GORM CommentModel.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        data.ID,
		Rating:    data.Rating,
		Text:      data.Text,
		UserID:    data.UserID,
		RecipeID:  data.RecipeID,
		CreatedAt: data.CreatedAt,
	}
}

func toCommentsDomain(models []*model.CommentModel) []*entity.Comment {
	comments := make([]*entity.Comment, 0, len(models))
	for _, commentM := range models {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments
}
