package sqlstore

import (
	"context"

	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/repository"
	"recipefinder/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user profile.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := withSavepoint(ctx, repo.db, func(tx *gorm.DB) error {
		return tx.Create(userM).Error
	}); err != nil {
		return translateWriteError(err, domainerrors.ErrUserAlreadyExists, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByExternalID retrieves a user by the identity provider's key.
func (repo *userRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&userM).Error; err != nil {
		return nil, translateReadError(err, domainerrors.ErrUserNotFound, "failed to find user by external id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves the first user registered with this email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		return nil, translateReadError(err, domainerrors.ErrUserNotFound, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// UpdateImage replaces a user's profile image reference.
func (repo *userRepository) UpdateImage(ctx context.Context, externalID, imageRef string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("external_id = ?", externalID).
		Update("image_ref", imageRef)

	if result.Error != nil {
		return domainerrors.NewQueryFailure(result.Error, "failed to update user image")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:         data.ID,
		ExternalID: data.ExternalID,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Nickname:   data.Nickname,
		Email:      data.Email,
		ImageRef:   data.ImageRef,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:         data.ID,
		ExternalID: data.ExternalID,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Nickname:   data.Nickname,
		Email:      data.Email,
		ImageRef:   data.ImageRef,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
