// Package storage implements blob persistence for generated catalog artifacts.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"tangoshop/config"
	"tangoshop/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Register the bucket drivers used by the supported deployment targets.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobStorage implements the service.ObjectStorage interface on top of a
// gocloud.dev bucket, so local disk, memory and GCS are interchangeable.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewBlobStorage opens the bucket named by the configuration and returns it
// as a service.ObjectStorage.
func NewBlobStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.ObjectStorage, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL is not configured")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.Storage.BucketURL)
	}

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// Upload writes data under key with the given content type and returns the public URL.
func (s *blobStorage) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	opts := &blob.WriterOptions{
		ContentType: contentType,
	}

	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to upload object %s", key)
	}

	s.logger.Debug("object uploaded",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.Int("size", len(data)))

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the object stored under key. Missing objects are not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

// Close releases the underlying bucket handle.
func (s *blobStorage) Close() error {
	return s.bucket.Close()
}
