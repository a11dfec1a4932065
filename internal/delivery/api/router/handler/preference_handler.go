package handler

import (
	"net/http"

	"style/internal/delivery/api/response"
	"style/internal/domain/entity"
	"style/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PreferenceHandler struct {
	uc usecase.PreferenceUsecase
}

func NewPreferenceHandler(uc usecase.PreferenceUsecase) *PreferenceHandler {
	return &PreferenceHandler{uc: uc}
}

// PreferencesRequest lists the only keys save and update accept. Other keys
// are ignored and omitted keys keep their stored value.
//
// Older mobile builds send pecaFrequente, corPreferida, estiloEvitar and
// ocasiaoComum. They are read as aliases; the English key wins when both are set.
type PreferencesRequest struct {
	Gender         *string `json:"gender" validate:"omitempty,max=50"`
	BodyType       *string `json:"bodyType" validate:"omitempty,max=50"`
	BodyShape      *string `json:"bodyShape" validate:"omitempty,max=50"`
	MainStyle      *string `json:"mainStyle" validate:"omitempty,max=50"`
	FrequentPiece  *string `json:"frequentPiece" validate:"omitempty,max=100"`
	PreferredColor *string `json:"preferredColor" validate:"omitempty,max=50"`
	StyleToAvoid   *string `json:"styleToAvoid" validate:"omitempty,max=50"`
	CommonOccasion *string `json:"commonOccasion" validate:"omitempty,max=100"`

	PecaFrequente *string `json:"pecaFrequente" validate:"omitempty,max=100"`
	CorPreferida  *string `json:"corPreferida" validate:"omitempty,max=50"`
	EstiloEvitar  *string `json:"estiloEvitar" validate:"omitempty,max=50"`
	OcasiaoComum  *string `json:"ocasiaoComum" validate:"omitempty,max=100"`
}

func (r PreferencesRequest) toUpdate() entity.PreferenceUpdate {
	return entity.PreferenceUpdate{
		Gender:         r.Gender,
		BodyType:       r.BodyType,
		BodyShape:      r.BodyShape,
		MainStyle:      r.MainStyle,
		FrequentPiece:  firstSet(r.FrequentPiece, r.PecaFrequente),
		PreferredColor: firstSet(r.PreferredColor, r.CorPreferida),
		StyleToAvoid:   firstSet(r.StyleToAvoid, r.EstiloEvitar),
		CommonOccasion: firstSet(r.CommonOccasion, r.OcasiaoComum),
	}
}

func firstSet(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}

	return nil
}

// GetPreferences handles GET /api/preferences. Users without preferences get an empty object.
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	preference, err := h.uc.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if preference == nil {
		return response.Success(c, http.StatusOK, struct{}{})
	}

	return response.Success(c, http.StatusOK, preference)
}

// SavePreferences handles POST /api/preferences.
func (h *PreferenceHandler) SavePreferences(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PreferencesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	preference, err := h.uc.SavePreferences(c.Request().Context(), userID, usecase.SavePreferencesInput(req.toUpdate()))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preference)
}

// UpdatePreferences handles PUT /api/preferences.
func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PreferencesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	preference, err := h.uc.UpdatePreferences(c.Request().Context(), userID, req.toUpdate())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preference)
}
