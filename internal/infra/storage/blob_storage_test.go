package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStorage_Upload(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := NewBlobStorage(ctx, "mem://", "photos", logger)
	require.NoError(t, err)
	defer s.Close()

	key, err := s.Upload(ctx, "detections/user-1/abc.jpg", []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "photos/detections/user-1/abc.jpg", key)

	bs := s.(*blobStorage)
	got, err := bs.bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), got)

	attrs, err := bs.bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)
}

func TestBlobStorage_Upload_NoPrefix(t *testing.T) {
	ctx := context.Background()

	s, err := NewBlobStorage(ctx, "mem://", "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer s.Close()

	key, err := s.Upload(ctx, "a/b.png", []byte{1}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "a/b.png", key)
}

func TestNewBlobStorage_UnknownScheme(t *testing.T) {
	_, err := NewBlobStorage(context.Background(), "nope://bucket", "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
