package handler

import (
	"net/http"
	"testing"

	"style/internal/domain/entity"
	domainerrors "style/internal/domain/errors"
	"style/internal/usecase"
	mockUsecase "style/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPreferenceTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockPreferenceUsecase) {
	uc := mockUsecase.NewMockPreferenceUsecase(t)
	h := NewPreferenceHandler(uc)

	e := newTestEcho()
	g := e.Group("/api/preferences", asUser(testUser))
	g.GET("", h.GetPreferences)
	g.POST("", h.SavePreferences)
	g.PUT("", h.UpdatePreferences)

	return e, uc
}

func TestPreferenceHandler_GetPreferences_NoneYet(t *testing.T) {
	e, uc := newPreferenceTestEcho(t)

	uc.EXPECT().GetPreferences(mock.Anything, testUser.ID).Return(nil, nil).Once()

	rec, env := do(t, e, httptestGet("/api/preferences"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "{}", string(env.Data))
}

func TestPreferenceHandler_SavePreferences(t *testing.T) {
	female, casual := "female", "casual"

	t.Run("omitted keys stay nil", func(t *testing.T) {
		e, uc := newPreferenceTestEcho(t)

		uc.EXPECT().
			SavePreferences(mock.Anything, testUser.ID, usecase.SavePreferencesInput{
				Gender:    &female,
				MainStyle: &casual,
			}).
			Return(&entity.Preference{UserID: testUser.ID, Gender: "female", MainStyle: "casual"}, nil).
			Once()

		rec, _ := do(t, e, jsonRequest(http.MethodPost, "/api/preferences", map[string]string{
			"gender":    "female",
			"mainStyle": "casual",
		}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("legacy keys are read as aliases", func(t *testing.T) {
		e, uc := newPreferenceTestEcho(t)

		uc.EXPECT().
			SavePreferences(mock.Anything, testUser.ID, mock.MatchedBy(func(in usecase.SavePreferencesInput) bool {
				return in.FrequentPiece != nil && *in.FrequentPiece == "jeans" &&
					in.PreferredColor != nil && *in.PreferredColor == "navy" &&
					in.StyleToAvoid != nil && *in.StyleToAvoid == "formal" &&
					in.CommonOccasion != nil && *in.CommonOccasion == "work"
			})).
			Return(&entity.Preference{UserID: testUser.ID}, nil).
			Once()

		rec, _ := do(t, e, jsonRequest(http.MethodPost, "/api/preferences", map[string]string{
			"pecaFrequente":  "jeans",
			"corPreferida":   "red",
			"preferredColor": "navy",
			"estiloEvitar":   "formal",
			"ocasiaoComum":   "work",
		}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPreferenceHandler_UpdatePreferences(t *testing.T) {
	t.Run("only known keys are forwarded", func(t *testing.T) {
		e, uc := newPreferenceTestEcho(t)

		uc.EXPECT().
			UpdatePreferences(mock.Anything, testUser.ID, mock.MatchedBy(func(u entity.PreferenceUpdate) bool {
				return u.PreferredColor != nil && *u.PreferredColor == "black" && u.Gender == nil
			})).
			Return(&entity.Preference{UserID: testUser.ID, PreferredColor: "black"}, nil).
			Once()

		rec, _ := do(t, e, jsonRequest(http.MethodPut, "/api/preferences", map[string]string{
			"preferredColor": "black",
			"userId":         "someone-else",
		}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("legacy key", func(t *testing.T) {
		e, uc := newPreferenceTestEcho(t)

		uc.EXPECT().
			UpdatePreferences(mock.Anything, testUser.ID, mock.MatchedBy(func(u entity.PreferenceUpdate) bool {
				return u.StyleToAvoid != nil && *u.StyleToAvoid == "boho" && u.PreferredColor == nil
			})).
			Return(&entity.Preference{UserID: testUser.ID, StyleToAvoid: "boho"}, nil).
			Once()

		rec, _ := do(t, e, jsonRequest(http.MethodPut, "/api/preferences", map[string]string{
			"estiloEvitar": "boho",
		}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no record yet", func(t *testing.T) {
		e, uc := newPreferenceTestEcho(t)

		uc.EXPECT().UpdatePreferences(mock.Anything, testUser.ID, mock.Anything).
			Return(nil, domainerrors.ErrPreferencesNotFound).
			Once()

		rec, _ := do(t, e, jsonRequest(http.MethodPut, "/api/preferences", map[string]string{
			"gender": "male",
		}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
