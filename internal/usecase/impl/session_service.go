package impl

import (
	"context"
	"log/slog"

	deliverycontext "style/internal/delivery/context"
	"style/internal/domain/entity"
	domainerrors "style/internal/domain/errors"
	"style/internal/domain/repository"
	"style/internal/domain/service"
	"style/internal/errors"
	"style/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate resolves token to a live identity.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*entity.PublicUser, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	userID, err := srv.tokenService.Verify(token)
	if err != nil {
		// The reason stays in the logs; callers only learn the token was rejected.
		srv.log(ctx).Debug("Rejected session token", slog.Any("reason", err))

		return nil, domainerrors.ErrUnauthenticated
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		srv.log(ctx).Info("Session token for missing user", slog.Any("user_id", userID))

		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load session user", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "load session user")
	}

	return user.Public(), nil
}
