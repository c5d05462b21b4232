package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "recipefinder/internal/delivery/context"
	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/repository"
	"recipefinder/internal/usecase"

	"github.com/pkg/errors"
)

// defaultProfileImage is assigned when a profile registers without a picture.
const defaultProfileImage = "profile1"

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the local profile of an identified user.
func (srv *profileService) Register(ctx context.Context, externalID string, input *usecase.RegisterProfileInput) (*entity.User, error) {
	if externalID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	imageRef := strings.TrimSpace(input.ImageRef)
	if imageRef == "" {
		imageRef = defaultProfileImage
	}

	user := &entity.User{
		ExternalID: externalID,
		FirstName:  strings.TrimSpace(input.FirstName),
		LastName:   strings.TrimSpace(input.LastName),
		Nickname:   strings.TrimSpace(input.Nickname),
		Email:      strings.ToLower(strings.TrimSpace(input.Email)),
		ImageRef:   imageRef,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("failed to register profile", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register profile")
	}
	srv.log(ctx).Info("Profile registered", slog.String("user_id", externalID))

	return user, nil
}

// GetProfile retrieves a profile by identity provider key.
func (srv *profileService) GetProfile(ctx context.Context, externalID string) (*entity.User, error) {
	srv.log(ctx).Debug("Getting user profile", slog.String("user_id", externalID))

	user, err := srv.userRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// FindByEmail retrieves the profile registered with email.
func (srv *profileService) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}

// UpdateImage replaces the profile image reference verbatim.
func (srv *profileService) UpdateImage(ctx context.Context, externalID, imageRef string) error {
	if externalID == "" {
		return domainerrors.ErrUnauthenticated
	}

	if err := srv.userRepo.UpdateImage(ctx, externalID, imageRef); err != nil {
		return errors.Wrap(err, "failed to update profile image")
	}
	srv.log(ctx).Info("Profile image updated", slog.String("user_id", externalID))

	return nil
}
