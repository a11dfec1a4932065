package service

import (
	"context"
	"errors"

	"style/internal/domain/entity"
)

// ErrObjectNotFound is returned when a reference does not point into the expected bucket.
var ErrObjectNotFound = errors.New("object not found")

// ObjectStorage stores image bytes and hands back public references.
type ObjectStorage interface {
	// Put writes data under key and returns its public URL.
	Put(ctx context.Context, bucket entity.Bucket, key string, data []byte, contentType string) (string, error)

	// Delete removes key. Deleting an absent key succeeds.
	Delete(ctx context.Context, bucket entity.Bucket, key string) error

	// KeyFromURL extracts the object key from a public URL produced by Put.
	KeyFromURL(bucket entity.Bucket, url string) (string, error)
}
