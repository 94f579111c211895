// Package storage provides blob-bucket backed object storage for uploads.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"connect/config"
	"connect/internal/domain/lifecycle"
	"connect/internal/domain/service"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	"gocloud.dev/gcerrors"
)

// StorageParams holds the dependencies for creating object storage.
type StorageParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewObjectStorage opens the configured blob bucket. The bucket URL decides
// the driver: file:// for local development, gs:// for Google Cloud Storage.
func NewObjectStorage(lc fx.Lifecycle, params StorageParams) (service.ObjectStorage, error) {
	cfg := params.Config.Uploads
	if cfg == nil || cfg.BucketURL == "" {
		return nil, fmt.Errorf("uploads bucket url is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, fmt.Errorf("open bucket %s: %w", cfg.BucketURL, err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()
			done := make(chan error, 1)
			go func() { done <- bucket.Close() }()
			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

func (s *blobStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("open writer for %s: %w", key, err)
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close object %s: %w", key, err)
	}

	s.logger.Debug("uploaded object", slog.String("key", key), slog.String("content_type", contentType))

	return s.publicBaseURL + "/" + key, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}
