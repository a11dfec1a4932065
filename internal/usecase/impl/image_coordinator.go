package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "style/internal/delivery/context"
	"style/internal/domain/entity"
	domainerrors "style/internal/domain/errors"
	"style/internal/domain/service"
	"style/internal/errors"
	"style/internal/util"

	"github.com/google/uuid"
)

// imageCoordinator is shared by the services that keep rows and stored images in step.
// Uploads and deletes are never rolled back; whatever cannot be cleaned up inline is
// announced to the janitor.
type imageCoordinator struct {
	storage      service.ObjectStorage
	publisher    service.EventPublisher
	maxImageSize int64
	now          func() time.Time
	logger       *slog.Logger
}

func newImageCoordinator(
	storage service.ObjectStorage,
	publisher service.EventPublisher,
	maxImageSize int64,
	logger *slog.Logger,
) *imageCoordinator {
	return &imageCoordinator{
		storage:      storage,
		publisher:    publisher,
		maxImageSize: maxImageSize,
		now:          time.Now,
		logger:       logger,
	}
}

func (ic *imageCoordinator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, ic.logger)
}

// validate rejects an image before anything is written.
func (ic *imageCoordinator) validate(image *entity.ImageUpload) error {
	if image == nil || len(image.Data) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("image is empty")
	}

	if !image.IsAllowedType() {
		return domainerrors.ErrUnsupportedImageType.WithDetails(image.ContentType)
	}

	if ic.maxImageSize > 0 && image.Size() > ic.maxImageSize {
		return domainerrors.ErrImageTooLarge.WithDetails(fmt.Sprintf("image is %s, limit is %s",
			util.FormatBytes(image.Size()), util.FormatBytes(ic.maxImageSize)))
	}

	return nil
}

// objectKey builds a key unique per owner, role and moment. The random suffix
// keeps two uploads within the same millisecond apart.
func (ic *imageCoordinator) objectKey(ownerID uuid.UUID, role entity.ImageRole, image *entity.ImageUpload) string {
	suffix := uuid.NewString()[:8]

	return fmt.Sprintf("%s-%s-%d-%s.%s", ownerID, role, ic.now().UnixMilli(), suffix, image.Extension())
}

// upload stores image and returns its public URL.
func (ic *imageCoordinator) upload(
	ctx context.Context,
	bucket entity.Bucket,
	ownerID uuid.UUID,
	role entity.ImageRole,
	image *entity.ImageUpload,
) (string, error) {
	key := ic.objectKey(ownerID, role, image)

	url, err := ic.storage.Put(ctx, bucket, key, image.Data, image.MediaType())
	if err != nil {
		ic.log(ctx).Error("Failed to upload image",
			slog.String("bucket", bucket.String()),
			slog.String("key", key),
			slog.Any("error", err),
		)

		return "", domainerrors.ErrStorageFailed.WrapMessage(fmt.Sprintf("upload %s image: %v", role, err))
	}

	ic.log(ctx).Debug("Image uploaded", slog.String("bucket", bucket.String()), slog.String("url", url))

	return url, nil
}

// remove deletes the object behind url. References the storage cannot map back to
// a key were not written by this service and are left alone.
func (ic *imageCoordinator) remove(ctx context.Context, bucket entity.Bucket, url string) error {
	if url == "" {
		return nil
	}

	key, err := ic.storage.KeyFromURL(bucket, url)
	if err != nil {
		ic.log(ctx).Warn("Skipping delete of foreign image reference",
			slog.String("bucket", bucket.String()),
			slog.String("url", url),
		)

		return nil
	}

	if err := ic.storage.Delete(ctx, bucket, key); err != nil {
		ic.log(ctx).Error("Failed to delete image",
			slog.String("bucket", bucket.String()),
			slog.String("key", key),
			slog.Any("error", err),
		)

		return domainerrors.ErrStorageFailed.WrapMessage(fmt.Sprintf("delete image: %v", err))
	}

	return nil
}

// announceOrphan tells the janitor about url. Publishing is best effort.
func (ic *imageCoordinator) announceOrphan(ctx context.Context, bucket entity.Bucket, url, reason string) {
	if url == "" || ic.publisher == nil {
		return
	}

	event := &service.OrphanedImageEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Bucket:    bucket,
		URL:       url,
		Reason:    reason,
	}

	if err := ic.publisher.PublishOrphanedImage(ctx, event); err != nil {
		ic.log(ctx).Warn("Failed to announce orphaned image",
			slog.String("url", url),
			slog.String("reason", reason),
			slog.Any("error", errors.WithStack(err)),
		)

		return
	}

	ic.log(ctx).Info("Orphaned image announced", slog.String("url", url), slog.String("reason", reason))
}
