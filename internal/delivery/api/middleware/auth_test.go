package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "style/internal/delivery/context"
	"style/internal/domain/constants"
	"style/internal/domain/entity"
	domainerrors "style/internal/domain/errors"
	mockUsecase "style/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &entity.PublicUser{ID: uuid.New(), Username: "ana.s"}

	tests := []struct {
		name       string
		header     string
		setup      func(sessions *mockUsecase.MockSessionUsecase)
		wantStatus int
	}{
		{
			name:       "no header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic YW5hOnNlY3JldA==",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "scheme without token",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			header: "Bearer forged",
			setup: func(sessions *mockUsecase.MockSessionUsecase) {
				sessions.EXPECT().Authenticate(mock.Anything, "forged").Return(nil, domainerrors.ErrUnauthenticated).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "account deleted since issue",
			header: "Bearer stale",
			setup: func(sessions *mockUsecase.MockSessionUsecase) {
				sessions.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrUserNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(sessions *mockUsecase.MockSessionUsecase) {
				sessions.EXPECT().Authenticate(mock.Anything, "good").Return(user, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "scheme is case-insensitive",
			header: "bearer good",
			setup: func(sessions *mockUsecase.MockSessionUsecase) {
				sessions.EXPECT().Authenticate(mock.Anything, "good").Return(user, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := mockUsecase.NewMockSessionUsecase(t)
			if tt.setup != nil {
				tt.setup(sessions)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
			if tt.header != "" {
				req.Header.Set(constants.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var reached bool
			next := func(c echo.Context) error {
				reached = true
				got, ok := deliverycontext.GetUser(c)
				assert.True(t, ok)
				assert.Equal(t, user.ID, got.ID)

				userID, ok := deliverycontext.GetUserID(c)
				assert.True(t, ok)
				assert.Equal(t, user.ID, userID)

				return c.NoContent(http.StatusOK)
			}

			err := NewAuthMiddleware(sessions).Authenticate(next)(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, reached)
		})
	}
}
