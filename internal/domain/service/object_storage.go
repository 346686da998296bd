package service

import "context"

// ObjectStorage defines the interface for publishing generated artifacts
// (catalog HTML, QR images) to a blob store.
type ObjectStorage interface {
	// Upload writes data under key with the given content type and returns the public URL.
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)

	// Delete removes the object stored under key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the storage client.
	Close() error
}
