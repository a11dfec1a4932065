package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"style/internal/domain/constants"
	"style/internal/domain/entity"
	domainerrors "style/internal/domain/errors"
	"style/internal/usecase"
	mockUsecase "style/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCombinationTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockCombinationUsecase) {
	uc := mockUsecase.NewMockCombinationUsecase(t)
	h := NewCombinationHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := newTestEcho()
	g := e.Group("/api/combinations", asUser(testUser))
	g.GET("", h.ListCombinations)
	g.POST("", h.CreateCombination)
	g.GET("/:id", h.GetCombination)
	g.DELETE("/:id", h.DeleteCombination)
	g.POST("/:id/images", h.ReplaceImages)

	return e, uc
}

func TestCombinationHandler_ListCombinations_EmptyIsArray(t *testing.T) {
	e, uc := newCombinationTestEcho(t)

	uc.EXPECT().ListCombinations(mock.Anything, testUser.ID).Return(nil, nil).Once()

	rec, env := do(t, e, httptestGet("/api/combinations"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", string(env.Data))
}

func TestCombinationHandler_CreateCombination(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		e, uc := newCombinationTestEcho(t)

		created := &entity.Combination{
			ID:            uuid.New(),
			UserID:        testUser.ID,
			Name:          "Friday",
			UpperImageURL: "http://local/clothing-images/upper.jpg",
			LowerImageURL: "http://local/clothing-images/lower.jpg",
		}

		uc.EXPECT().
			CreateCombination(mock.Anything, testUser.ID, mock.MatchedBy(func(in usecase.CreateCombinationInput) bool {
				return in.Name == "Friday" && in.Description == "office" &&
					in.Upper != nil && in.Upper.ContentType == "image/jpeg" && len(in.Upper.Data) == 4 &&
					in.Lower != nil && in.Lower.Filename == "lowerImage.jpg"
			})).
			Return(created, nil).
			Once()

		req := multipartRequest(t, http.MethodPost, "/api/combinations",
			map[string]string{constants.FormFieldName: "Friday", constants.FormFieldDescription: "office"},
			jpegFile(constants.FormFieldUpperImage),
			jpegFile(constants.FormFieldLowerImage),
		)
		rec, env := do(t, e, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var out map[string]any
		decodeData(t, env, &out)
		assert.Equal(t, created.UpperImageURL, out["upperImage"])
		assert.Equal(t, created.LowerImageURL, out["lowerImage"])
	})

	t.Run("missing lower image", func(t *testing.T) {
		e, uc := newCombinationTestEcho(t)

		uc.EXPECT().
			CreateCombination(mock.Anything, testUser.ID, mock.MatchedBy(func(in usecase.CreateCombinationInput) bool {
				return in.Upper != nil && in.Lower == nil
			})).
			Return(nil, domainerrors.ErrMissingImages).
			Once()

		req := multipartRequest(t, http.MethodPost, "/api/combinations", nil, jpegFile(constants.FormFieldUpperImage))
		rec, env := do(t, e, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "MISSING_IMAGES", env.Error.Code)
	})
}

func TestCombinationHandler_GetCombination(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "absent", err: domainerrors.ErrCombinationNotFound, wantStatus: http.StatusNotFound, wantCode: "COMBINATION_NOT_FOUND"},
		{name: "foreign", err: domainerrors.ErrCombinationForbidden, wantStatus: http.StatusForbidden, wantCode: "COMBINATION_FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, uc := newCombinationTestEcho(t)
			id := uuid.New()

			var found *entity.Combination
			if tt.err == nil {
				found = &entity.Combination{ID: id, UserID: testUser.ID}
			}
			uc.EXPECT().GetCombination(mock.Anything, testUser.ID, id).Return(found, tt.err).Once()

			rec, env := do(t, e, httptestGet("/api/combinations/"+id.String()))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
			}
		})
	}
}

func TestCombinationHandler_MalformedID(t *testing.T) {
	e, _ := newCombinationTestEcho(t)

	rec, env := do(t, e, httptestGet("/api/combinations/not-a-uuid"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestCombinationHandler_DeleteCombination(t *testing.T) {
	e, uc := newCombinationTestEcho(t)
	id := uuid.New()

	uc.EXPECT().DeleteCombination(mock.Anything, testUser.ID, id).Return(nil).Once()

	req := httptestGet("/api/combinations/" + id.String())
	req.Method = http.MethodDelete
	rec, env := do(t, e, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var out map[string]string
	decodeData(t, env, &out)
	assert.Equal(t, id.String(), out["id"])
}

func TestCombinationHandler_ReplaceImages(t *testing.T) {
	t.Run("upper only", func(t *testing.T) {
		e, uc := newCombinationTestEcho(t)
		id := uuid.New()

		uc.EXPECT().
			ReplaceCombinationImages(mock.Anything, testUser.ID, id, mock.MatchedBy(func(in usecase.ReplaceImagesInput) bool {
				return in.Upper != nil && in.Lower == nil
			})).
			Return(&entity.Combination{ID: id, UserID: testUser.ID}, nil).
			Once()

		req := multipartRequest(t, http.MethodPost, "/api/combinations/"+id.String()+"/images", nil,
			jpegFile(constants.FormFieldUpperImage))
		rec, _ := do(t, e, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		e, uc := newCombinationTestEcho(t)
		id := uuid.New()

		uc.EXPECT().
			ReplaceCombinationImages(mock.Anything, testUser.ID, id, mock.Anything).
			Return(nil, domainerrors.ErrStorageFailed.WrapMessage("bucket unreachable")).
			Once()

		req := multipartRequest(t, http.MethodPost, "/api/combinations/"+id.String()+"/images", nil,
			jpegFile(constants.FormFieldLowerImage))
		rec, env := do(t, e, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, env.Error)
		assert.Nil(t, env.Error.Details)
	})
}
