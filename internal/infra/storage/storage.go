// Package storage implements service.ObjectStorage on top of gocloud.dev/blob.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"style/config"
	"style/internal/domain/entity"
	"style/internal/domain/lifecycle"
	"style/internal/domain/service"
	"style/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

var buckets = []entity.Bucket{entity.BucketProfileImages, entity.BucketClothingImages}

// Params defines the parameters required for the object storage
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// BlobStorage writes images to one blob.Bucket per entity.Bucket.
type BlobStorage struct {
	buckets       map[entity.Bucket]*blob.Bucket
	publicBaseURL string
}

// New opens every bucket with the configured driver and closes them on stop.
func New(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		return nil, errors.New("storage configuration is missing")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	opener, err := newBucketOpener(ctx, cfg)
	if err != nil {
		return nil, err
	}

	opened := make(map[entity.Bucket]*blob.Bucket, len(buckets))
	for _, name := range buckets {
		bucket, err := opener(ctx, name)
		if err != nil {
			closeBuckets(params.Logger, opened)

			return nil, errors.Wrapf(err, "open bucket %s", name)
		}
		opened[name] = bucket
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			closeBuckets(params.Logger, opened)

			return nil
		},
	})

	params.Logger.Info("Object storage ready",
		slog.String("driver", cfg.Driver),
		slog.String("publicBaseUrl", cfg.PublicBaseURL),
	)

	return NewBlobStorage(publicBaseURL(cfg), opened), nil
}

// NewBlobStorage wraps already opened buckets.
func NewBlobStorage(baseURL string, opened map[entity.Bucket]*blob.Bucket) *BlobStorage {
	return &BlobStorage{
		buckets:       opened,
		publicBaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *BlobStorage) bucket(name entity.Bucket) (*blob.Bucket, error) {
	bucket, ok := s.buckets[name]
	if !ok {
		return nil, errors.Errorf("unknown bucket %q", name)
	}

	return bucket, nil
}

func (s *BlobStorage) Put(ctx context.Context, bucket entity.Bucket, key string, data []byte, contentType string) (string, error) {
	b, err := s.bucket(bucket)
	if err != nil {
		return "", err
	}

	if err := b.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "write %s/%s", bucket, key)
	}

	return s.publicURL(bucket, key), nil
}

// Delete treats a missing object as already deleted.
func (s *BlobStorage) Delete(ctx context.Context, bucket entity.Bucket, key string) error {
	b, err := s.bucket(bucket)
	if err != nil {
		return err
	}

	if err := b.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "delete %s/%s", bucket, key)
	}

	return nil
}

func (s *BlobStorage) KeyFromURL(bucket entity.Bucket, url string) (string, error) {
	prefix := s.publicURL(bucket, "")

	key, ok := strings.CutPrefix(url, prefix)
	if !ok || key == "" || strings.Contains(key, "/") {
		return "", errors.Wrapf(service.ErrObjectNotFound, "%q is not an object of %s", url, bucket)
	}

	return key, nil
}

// Exists reports whether key is present in bucket.
func (s *BlobStorage) Exists(ctx context.Context, bucket entity.Bucket, key string) (bool, error) {
	b, err := s.bucket(bucket)
	if err != nil {
		return false, err
	}

	exists, err := b.Exists(ctx, key)

	return exists, errors.Wrapf(err, "exists %s/%s", bucket, key)
}

func (s *BlobStorage) publicURL(bucket entity.Bucket, key string) string {
	return s.publicBaseURL + "/" + bucket.String() + "/" + key
}

func publicBaseURL(cfg *config.StorageConfig) string {
	if cfg.PublicBaseURL != "" {
		return cfg.PublicBaseURL
	}

	return cfg.Driver + "://local"
}

func closeBuckets(logger *slog.Logger, opened map[entity.Bucket]*blob.Bucket) {
	for name, bucket := range opened {
		if err := bucket.Close(); err != nil {
			logger.Warn("Failed to close bucket", slog.String("bucket", name.String()), slog.Any("error", err))
		}
	}
}
