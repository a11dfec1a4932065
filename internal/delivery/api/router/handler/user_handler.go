package handler

import (
	"log/slog"
	"net/http"

	"style/internal/delivery/api/response"
	"style/internal/domain/constants"
	domainerrors "style/internal/domain/errors"
	"style/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the caller's own profile.
type UserHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

func NewUserHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type UpdateProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Username *string `json:"username" validate:"omitempty,min=3,max=30,username"`
	Bio      *string `json:"bio" validate:"omitempty,max=500"`
}

type profileResponse struct {
	User        any `json:"user"`
	Preferences any `json:"preferences"`
}

// GetProfile handles GET /api/users/me.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	res := profileResponse{User: profile.User, Preferences: struct{}{}}
	if profile.Preferences != nil {
		res.Preferences = profile.Preferences
	}

	return response.Success(c, http.StatusOK, res)
}

// UpdateProfile handles PUT /api/users/me.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "malformed request body")
	}

	// Empty name or username means "keep the current one".
	if req.Name != nil && *req.Name == "" {
		req.Name = nil
	}
	if req.Username != nil && *req.Username == "" {
		req.Username = nil
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Name:     req.Name,
		Username: req.Username,
		Bio:      req.Bio,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UploadProfileImage handles POST /api/users/me/profile-image with an "image" file field.
func (h *UserHandler) UploadProfileImage(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	image, err := formImage(c, constants.FormFieldImage)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if image == nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("image is required"))
	}

	user, err := h.uc.UploadProfileImage(c.Request().Context(), userID, image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
