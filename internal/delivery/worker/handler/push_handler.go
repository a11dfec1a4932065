// Package handler contains the janitor's Pub/Sub push endpoint.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"style/config"
	deliverycontext "style/internal/delivery/context"
	"style/internal/domain/constants"
	domainerrors "style/internal/domain/errors"
	"style/internal/errors"
	"style/internal/infra/pubsub"
	"style/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler receives orphaned image events. A 503 asks Pub/Sub to redeliver;
// anything else, including a malformed message, acknowledges it.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       tokenValidator
	janitor        usecase.JanitorUsecase
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Janitor usecase.JanitorUsecase
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validate: idtoken.Validate,
		janitor:  params.Janitor,
		logger:   params.Logger,
	}

	if cfg := params.Config.Janitor; cfg != nil {
		h.verifyPushAuth = cfg.VerifyPushAuth
		h.audience = cfg.PushAudience
	}

	return h
}

// HandlePush handles POST /push.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.log(ctx).Warn("[Janitor] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.log(ctx).Error("[Janitor] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeOrphanedImage()
	if err != nil {
		h.log(ctx).Error("[Janitor] Failed to decode orphaned image event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// The API's request id follows the image so both sides can be correlated.
	requestID := event.RequestID
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), reqLogger)

	reqLogger.Info("[Janitor] Processing orphaned image",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("bucket", event.Bucket.String()),
		slog.String("reason", event.Reason),
	)

	deleted, err := h.janitor.CollectOrphan(ctx, event)
	if err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Janitor] Failed to collect orphaned image",
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)

		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Janitor] Orphaned image handled", slog.Bool("deleted", deleted))

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}

// isRetryable reports whether redelivery could succeed. Bad events never will.
func isRetryable(err error) bool {
	return domainerrors.KindOf(err) == domainerrors.KindInternal
}

// verifyPubSubToken checks the OIDC token Pub/Sub attaches to authenticated pushes.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	scheme, token, found := strings.Cut(req.Header.Get(constants.HeaderAuthorization), " ")
	if !found || !strings.EqualFold(scheme, constants.BearerScheme) || token == "" {
		return errors.New("missing bearer token")
	}

	audience := h.audience
	if audience == "" {
		proto := "https"
		if req.TLS == nil {
			proto = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", proto, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if !isGoogleIssuer(payload.Issuer) {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

func isGoogleIssuer(issuer string) bool {
	for _, candidate := range googleIssuers {
		if issuer == candidate {
			return true
		}
	}

	return false
}
