package handler

import (
	"log/slog"
	"net/http"

	"style/internal/delivery/api/response"
	"style/internal/domain/constants"
	"style/internal/domain/entity"
	"style/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CombinationHandler serves combinations and their images.
type CombinationHandler struct {
	uc     usecase.CombinationUsecase
	logger *slog.Logger
}

func NewCombinationHandler(uc usecase.CombinationUsecase, logger *slog.Logger) *CombinationHandler {
	return &CombinationHandler{
		uc:     uc,
		logger: logger,
	}
}

type deleteCombinationResponse struct {
	ID uuid.UUID `json:"id"`
}

// ListCombinations handles GET /api/combinations.
func (h *CombinationHandler) ListCombinations(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	combinations, err := h.uc.ListCombinations(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if combinations == nil {
		combinations = []*entity.Combination{}
	}

	return response.Success(c, http.StatusOK, combinations)
}

// GetCombination handles GET /api/combinations/:id.
func (h *CombinationHandler) GetCombination(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	combinationID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	combination, err := h.uc.GetCombination(c.Request().Context(), userID, combinationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, combination)
}

// CreateCombination handles POST /api/combinations as multipart with
// upperImage, lowerImage and optional name and description fields.
func (h *CombinationHandler) CreateCombination(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	images, err := h.readGarments(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	combination, err := h.uc.CreateCombination(c.Request().Context(), userID, usecase.CreateCombinationInput{
		Name:        c.FormValue(constants.FormFieldName),
		Description: c.FormValue(constants.FormFieldDescription),
		Upper:       images.Upper,
		Lower:       images.Lower,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, combination)
}

// DeleteCombination handles DELETE /api/combinations/:id.
func (h *CombinationHandler) DeleteCombination(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	combinationID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.DeleteCombination(c.Request().Context(), userID, combinationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, deleteCombinationResponse{ID: combinationID})
}

// ReplaceImages handles POST /api/combinations/:id/images with either or both garment fields.
func (h *CombinationHandler) ReplaceImages(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	combinationID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	images, err := h.readGarments(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	combination, err := h.uc.ReplaceCombinationImages(c.Request().Context(), userID, combinationID, images)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, combination)
}

func (h *CombinationHandler) readGarments(c echo.Context) (usecase.ReplaceImagesInput, error) {
	upper, err := formImage(c, constants.FormFieldUpperImage)
	if err != nil {
		return usecase.ReplaceImagesInput{}, err
	}

	lower, err := formImage(c, constants.FormFieldLowerImage)
	if err != nil {
		return usecase.ReplaceImagesInput{}, err
	}

	return usecase.ReplaceImagesInput{Upper: upper, Lower: lower}, nil
}
