package impl

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"recipefinder/config"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/service"
	mockService "recipefinder/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func encodeTestPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func newTestImageService(t *testing.T, maxBytes int64) (*mockService.MockImageStorage, *imageService) {
	storage := mockService.NewMockImageStorage(t)
	svc := NewImageService(ImageServiceParams{
		Storage: storage,
		Config:  &config.Config{Storage: &config.StorageConfig{MaxImageBytes: maxBytes}},
		Logger:  newDiscardLogger(),
	})

	return storage, svc.(*imageService)
}

func TestImageService_Upload_DetectsContentType(t *testing.T) {
	storage, svc := newTestImageService(t, 1<<20)
	ctx := context.Background()
	data := encodeTestPNG(t)

	stored := &service.StoredImage{Key: "k.png", URL: "http://img/k.png", ContentType: "image/png", Size: int64(len(data))}
	storage.EXPECT().Put(ctx, data, "image/png").Return(stored, nil).Once()

	got, err := svc.Upload(ctx, data, "application/octet-stream")

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestImageService_Upload_Rejects(t *testing.T) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		_, svc := newTestImageService(t, 1<<20)

		_, err := svc.Upload(ctx, nil, "image/png")

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("too large", func(t *testing.T) {
		_, svc := newTestImageService(t, 8)

		_, err := svc.Upload(ctx, encodeTestPNG(t), "image/png")

		assert.True(t, errors.Is(err, domainerrors.ErrImageTooLarge))
	})

	t.Run("not an image", func(t *testing.T) {
		_, svc := newTestImageService(t, 1<<20)

		_, err := svc.Upload(ctx, []byte("%PDF-1.4 not really an image"), "image/png")

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestImageService_Upload_StorageFailure(t *testing.T) {
	storage, svc := newTestImageService(t, 1<<20)
	ctx := context.Background()

	storage.EXPECT().Put(ctx, mock.Anything, "image/png").
		Return(nil, domainerrors.ErrImageStorageFailed.WithDetails("bucket unreachable")).Once()

	_, err := svc.Upload(ctx, encodeTestPNG(t), "image/png")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrImageStorageFailed))
}

func TestImageService_Open(t *testing.T) {
	storage, svc := newTestImageService(t, 0)
	ctx := context.Background()

	body := io.NopCloser(bytes.NewReader([]byte("data")))
	meta := &service.StoredImage{Key: "abc.png", ContentType: "image/png", Size: 4}
	storage.EXPECT().Open(ctx, "abc.png").Return(body, meta, nil).Once()

	reader, got, err := svc.Open(ctx, "abc.png")
	require.NoError(t, err)
	assert.Equal(t, meta, got)
	_ = reader.Close()

	_, _, err = svc.Open(ctx, "../etc/passwd")
	assert.True(t, errors.Is(err, domainerrors.ErrImageNotFound))

	assert.Equal(t, int64(fallbackMaxImageBytes), svc.maxBytes)
}
