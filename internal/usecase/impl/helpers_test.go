package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"style/config"
	"style/internal/domain/entity"
	"style/internal/domain/repository"
	"style/internal/domain/service"
	mockRepo "style/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Storage: &config.StorageConfig{
			Driver:       config.StorageDriverMem,
			MaxImageSize: 1 << 10,
		},
		Combination: &config.CombinationConfig{
			DefaultName: "My combination",
		},
	}
}

func jpegUpload(name string) *entity.ImageUpload {
	return &entity.ImageUpload{
		Data:        []byte("\xff\xd8\xff" + name),
		ContentType: "image/jpeg",
		Filename:    name + ".jpg",
	}
}

// expectTransaction runs the callback against factory, like a committed transaction would.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func orphanFor(url, reason string) any {
	return mock.MatchedBy(func(event *service.OrphanedImageEvent) bool {
		return event.URL == url && event.Reason == reason && event.Bucket.IsValid()
	})
}
