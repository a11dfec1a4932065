package usecase

import (
	"context"

	"style/internal/domain/service"
)

// JanitorUsecase removes stored images that no row references.
type JanitorUsecase interface {
	// CollectOrphan deletes the object named by event unless a row still
	// references it. It reports whether anything was deleted.
	CollectOrphan(ctx context.Context, event *service.OrphanedImageEvent) (bool, error)
}
