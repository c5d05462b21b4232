package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"recipefinder/config"
	deliverycontext "recipefinder/internal/delivery/context"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/service"
	"recipefinder/internal/usecase"
	"recipefinder/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const fallbackMaxImageBytes = 5 << 20

// imageService implements the ImageUsecase interface.
type imageService struct {
	storage  service.ImageStorage
	maxBytes int64
	logger   *slog.Logger
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	Storage service.ImageStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewImageService is the constructor for imageService.
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	maxBytes := int64(fallbackMaxImageBytes)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxImageBytes > 0 {
		maxBytes = params.Config.Storage.MaxImageBytes
	}

	return &imageService{
		storage:  params.Storage,
		maxBytes: maxBytes,
		logger:   params.Logger,
	}
}

func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload sniffs the payload, rejects anything that is not an image and stores it.
// The declared content type is only used when sniffing is inconclusive.
func (srv *imageService) Upload(ctx context.Context, data []byte, contentType string) (*service.StoredImage, error) {
	if len(data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image is empty")
	}
	if int64(len(data)) > srv.maxBytes {
		return nil, domainerrors.ErrImageTooLarge.WithDetails("limit is " + util.FormatBytes(srv.maxBytes))
	}

	detected := mimetype.Detect(data).String()
	if !strings.HasPrefix(detected, "image/") {
		if !strings.HasPrefix(contentType, "image/") || detected != "application/octet-stream" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported image type " + detected)
		}
		detected = contentType
	}

	stored, err := srv.storage.Put(ctx, data, detected)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store image")
	}

	srv.log(ctx).Info("Image stored",
		slog.String("key", stored.Key),
		slog.String("content_type", stored.ContentType),
		slog.Int64("size", stored.Size),
	)

	return stored, nil
}

// Open streams a stored image by key.
func (srv *imageService) Open(ctx context.Context, key string) (io.ReadCloser, *service.StoredImage, error) {
	if key == "" || strings.ContainsAny(key, "/\\") {
		return nil, nil, domainerrors.ErrImageNotFound
	}

	reader, stored, err := srv.storage.Open(ctx, key)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open image")
	}

	return reader, stored, nil
}
