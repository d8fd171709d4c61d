// Package storage keeps uploaded photos in a gocloud.dev bucket
// (s3://, gs://, file:// or mem://).
package storage

import (
	"context"
	"log/slog"
	"path"

	"urjabandhu/config"
	"urjabandhu/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
)

const defaultBucketURL = "mem://"

type blobStorage struct {
	bucket *blob.Bucket
	prefix string
	logger *slog.Logger
}

// NewBlobStorage opens the bucket at bucketURL. Keys are written below prefix.
func NewBlobStorage(ctx context.Context, bucketURL, prefix string, logger *slog.Logger) (service.PhotoStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &blobStorage{bucket: bucket, prefix: prefix, logger: logger}, nil
}

// Upload writes data and returns the full object key.
func (s *blobStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	fullKey := key
	if s.prefix != "" {
		fullKey = path.Join(s.prefix, key)
	}

	err := s.bucket.WriteAll(ctx, fullKey, data, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", fullKey)
	}

	s.logger.Debug("Photo uploaded", slog.String("key", fullKey), slog.Int("bytes", len(data)))

	return fullKey, nil
}

func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}

// Params holds the dependencies for NewPhotoStorage.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPhotoStorage opens the configured bucket, or an in-memory bucket when
// storage is not configured.
func NewPhotoStorage(params Params) (service.PhotoStorage, error) {
	bucketURL, prefix := defaultBucketURL, ""
	if cfg := params.Config.Storage; cfg != nil && cfg.BucketURL != "" {
		bucketURL, prefix = cfg.BucketURL, cfg.Prefix
	} else {
		params.Logger.Warn("Storage not configured, photos are kept in memory only")
	}

	storage, err := NewBlobStorage(params.Ctx, bucketURL, prefix, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}
