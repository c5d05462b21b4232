// Package storage keeps uploaded images in a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"recipefinder/config"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/service"
	"recipefinder/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const (
	defaultBucketURL = "mem://"
	imagePrefix      = "images/"
)

// blobImageStorage implements service.ImageStorage on a content-addressed bucket.
type blobImageStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the image storage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStorage opens the configured bucket and closes it on shutdown.
func NewImageStorage(params Params) (service.ImageStorage, error) {
	bucketURL := defaultBucketURL
	publicBaseURL := ""
	if cfg := params.Config.Storage; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		publicBaseURL = cfg.PublicBaseURL
	}
	if bucketURL == defaultBucketURL {
		params.Logger.Warn("Image storage uses an in-memory bucket, uploads are lost on restart")
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing image bucket")

			return bucket.Close()
		},
	})

	return NewBlobImageStorage(bucket, publicBaseURL, params.Logger), nil
}

// NewBlobImageStorage wraps an already opened bucket.
func NewBlobImageStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) *blobImageStorage {
	if publicBaseURL != "" && !strings.HasSuffix(publicBaseURL, "/") {
		publicBaseURL += "/"
	}

	return &blobImageStorage{
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

// Put stores data under its SHA256 digest. Uploading identical bytes twice keeps one object.
func (s *blobImageStorage) Put(ctx context.Context, data []byte, contentType string) (*service.StoredImage, error) {
	key := util.ContentChecksum(data) + extensionFor(contentType)

	exists, err := s.bucket.Exists(ctx, imagePrefix+key)
	if err != nil {
		return nil, domainerrors.ErrImageStorageFailed.WithDetails(err.Error())
	}

	if !exists {
		if err := s.bucket.WriteAll(ctx, imagePrefix+key, data, &blob.WriterOptions{
			ContentType:  contentType,
			CacheControl: "public, max-age=31536000, immutable",
		}); err != nil {
			return nil, domainerrors.ErrImageStorageFailed.WithDetails(err.Error())
		}
		s.logger.DebugContext(ctx, "Image written",
			slog.String("key", key),
			slog.String("size", util.FormatBytes(int64(len(data)))),
		)
	}

	return &service.StoredImage{
		Key:         key,
		URL:         s.publicBaseURL + key,
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

// Open streams an image by key.
func (s *blobImageStorage) Open(ctx context.Context, key string) (io.ReadCloser, *service.StoredImage, error) {
	reader, err := s.bucket.NewReader(ctx, imagePrefix+key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil, domainerrors.ErrImageNotFound
		}

		return nil, nil, domainerrors.ErrImageStorageFailed.WithDetails(err.Error())
	}

	return reader, &service.StoredImage{
		Key:         key,
		URL:         s.publicBaseURL + key,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

func extensionFor(contentType string) string {
	if detected := mimetype.Lookup(contentType); detected != nil {
		return detected.Extension()
	}

	return ""
}
