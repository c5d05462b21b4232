package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/util"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) *blobImageStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobImageStorage(bucket, "http://localhost:8080/api/v1/images", slog.New(slog.DiscardHandler))
}

func TestBlobImageStorage_PutAndOpen(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()
	data := []byte("\x89PNG\r\n\x1a\nfake image body")

	stored, err := storage.Put(ctx, data, "image/png")
	require.NoError(t, err)

	assert.Equal(t, util.ContentChecksum(data)+".png", stored.Key)
	assert.Equal(t, "http://localhost:8080/api/v1/images/"+stored.Key, stored.URL)
	assert.Equal(t, int64(len(data)), stored.Size)

	reader, meta, err := storage.Open(ctx, stored.Key)
	require.NoError(t, err)
	defer reader.Close()

	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, data, body)
	assert.Equal(t, "image/png", meta.ContentType)
	assert.Equal(t, int64(len(data)), meta.Size)
}

func TestBlobImageStorage_PutIsContentAddressed(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	first, err := storage.Put(ctx, []byte("same bytes"), "image/jpeg")
	require.NoError(t, err)
	second, err := storage.Put(ctx, []byte("same bytes"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, first.Key, second.Key)
}

func TestBlobImageStorage_OpenMissing(t *testing.T) {
	storage := newTestStorage(t)

	_, _, err := storage.Open(context.Background(), "nope.png")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrImageNotFound))
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".png", extensionFor("image/png"))
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Empty(t, extensionFor("application/x-unknown-thing"))
}
