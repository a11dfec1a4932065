package storage

import (
	"context"
	"path/filepath"

	"style/config"
	"style/internal/domain/entity"
	"style/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/blob/s3blob"
)

type bucketOpener func(ctx context.Context, name entity.Bucket) (*blob.Bucket, error)

func newBucketOpener(ctx context.Context, cfg *config.StorageConfig) (bucketOpener, error) {
	switch cfg.Driver {
	case config.StorageDriverS3:
		client, err := newS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}

		return func(ctx context.Context, name entity.Bucket) (*blob.Bucket, error) {
			return s3blob.OpenBucket(ctx, client, name.String(), nil)
		}, nil

	case config.StorageDriverGCS:
		// Credentials come from Application Default Credentials.
		return func(ctx context.Context, name entity.Bucket) (*blob.Bucket, error) {
			return blob.OpenBucket(ctx, "gs://"+name.String())
		}, nil

	case config.StorageDriverFile:
		if cfg.FileDir == "" {
			return nil, errors.New("storage.fileDir is required for the file driver")
		}

		return func(_ context.Context, name entity.Bucket) (*blob.Bucket, error) {
			return fileblob.OpenBucket(filepath.Join(cfg.FileDir, name.String()), &fileblob.Options{CreateDir: true})
		}, nil

	case config.StorageDriverMem:
		return func(context.Context, entity.Bucket) (*blob.Bucket, error) {
			return memblob.OpenBucket(nil), nil
		}, nil

	default:
		return nil, errors.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// newS3Client targets any S3-compatible endpoint; Supabase storage needs path-style addressing.
func newS3Client(ctx context.Context, cfg config.S3Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}
