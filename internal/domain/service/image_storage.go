package service

import (
	"context"
	"io"
)

// StoredImage describes an image held by the object store.
type StoredImage struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}

// ImageStorage is the binary object store for recipe and profile pictures.
type ImageStorage interface {
	// Put stores the image and returns its retrievable URL.
	Put(ctx context.Context, data []byte, contentType string) (*StoredImage, error)

	// Open streams a stored image. A missing key yields errors.ErrImageNotFound.
	Open(ctx context.Context, key string) (io.ReadCloser, *StoredImage, error)
}
