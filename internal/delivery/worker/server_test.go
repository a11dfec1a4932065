package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"style/config"
	deliverycontext "style/internal/delivery/context"
	workerhandler "style/internal/delivery/worker/handler"
	mockUsecase "style/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
)

func TestNewEcho_Routes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Janitor: &config.JanitorConfig{}}

	pushHandler := workerhandler.NewPushHandler(workerhandler.PushHandlerParams{
		Config:  cfg,
		Logger:  logger,
		Janitor: mockUsecase.NewMockJanitorUsecase(t),
	})
	e := newEcho(cfg, logger, pushHandler)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("malformed push is rejected before the janitor runs", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("push only accepts POST", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/push", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
