package service

import "context"

// PhotoStorage stores uploaded device photos.
type PhotoStorage interface {
	// Upload writes data under key and returns the stored object key.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Close releases the underlying bucket.
	Close() error
}
