// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "style/internal/delivery/context"
	"style/internal/domain/entity"
	domainerrors "style/internal/domain/errors"
	"style/internal/domain/repository"
	"style/internal/domain/service"
	"style/internal/errors"
	"style/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger

	// decoyOnce guards decoyHash, a hash of a throwaway secret compared
	// against when the login email is unknown.
	decoyOnce sync.Once
	decoyHash string
}

// maxPasswordBytes is the longest password bcrypt will hash.
const maxPasswordBytes = 72

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an identity and signs its first session token.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Username = strings.TrimSpace(input.Username)

	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.String("username", input.Username))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: passwordHash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := ensureEmailFree(ctx, userRepo, input.Email); err != nil {
			return err
		}

		if err := ensureUsernameFree(ctx, userRepo, input.Username); err != nil {
			return err
		}

		// The unique constraints still decide concurrent registrations.
		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, errors.Wrap(err, "register user")
	}

	output, err := srv.issueSession(user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Any("user_id", user.ID))

	return output, nil
}

// Login verifies credentials. Unknown email and wrong password produce the same error.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		srv.log(ctx).Debug("Login for unknown email")
		// Spend the same bcrypt work as a real comparison.
		srv.hasher.Check(input.Password, srv.decoy(ctx))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Login with wrong password", slog.Any("user_id", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	output, err := srv.issueSession(user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.Any("user_id", user.ID))

	return output, nil
}

func (srv *authService) issueSession(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "issue session token")
	}

	return &usecase.AuthOutput{
		User:  user.Public(),
		Token: token,
	}, nil
}

func (srv *authService) decoy(ctx context.Context) string {
	srv.decoyOnce.Do(func() {
		hash, err := srv.hasher.Hash(uuid.NewString())
		if err != nil {
			srv.log(ctx).Warn("Failed to build decoy password hash", slog.Any("error", err))

			return
		}
		srv.decoyHash = hash
	})

	return srv.decoyHash
}

func validateRegisterInput(input usecase.RegisterInput) error {
	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Username == "" {
		missing = append(missing, "username")
	}
	if input.Password == "" {
		missing = append(missing, "password")
	}

	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("missing fields: " + strings.Join(missing, ", "))
	}
	if len(input.Password) > maxPasswordBytes {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}

	return nil
}

func ensureEmailFree(ctx context.Context, userRepo repository.UserRepository, email string) error {
	_, err := userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domainerrors.ErrEmailAlreadyExists
	case errors.Is(err, domainerrors.ErrUserNotFound):
		return nil
	default:
		return errors.Wrap(err, "check email")
	}
}

func ensureUsernameFree(ctx context.Context, userRepo repository.UserRepository, username string) error {
	_, err := userRepo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return domainerrors.ErrUsernameAlreadyExists
	case errors.Is(err, domainerrors.ErrUserNotFound):
		return nil
	default:
		return errors.Wrap(err, "check username")
	}
}
