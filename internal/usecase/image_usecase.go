package usecase

import (
	"context"
	"io"

	"recipefinder/internal/domain/service"
)

// ImageUsecase stores and serves recipe and profile pictures.
type ImageUsecase interface {
	// Upload stores an image and returns the URL to keep as an image reference.
	Upload(ctx context.Context, data []byte, contentType string) (*service.StoredImage, error)

	// Open streams a stored image by key.
	Open(ctx context.Context, key string) (io.ReadCloser, *service.StoredImage, error)
}
