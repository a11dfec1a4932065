// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"style/internal/delivery/api/middleware"
	"style/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	PreferenceHandler  *handler.PreferenceHandler
	CombinationHandler *handler.CombinationHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	preferenceHandler  *handler.PreferenceHandler
	combinationHandler *handler.CombinationHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		userHandler:        params.UserHandler,
		preferenceHandler:  params.PreferenceHandler,
		combinationHandler: params.CombinationHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/verify", r.authHandler.Verify, r.authMiddleware.Authenticate)
	}

	usersGroup := api.Group("/users", r.authMiddleware.Authenticate)
	{
		usersGroup.GET("/me", r.userHandler.GetProfile)
		usersGroup.PUT("/me", r.userHandler.UpdateProfile)
		usersGroup.POST("/me/profile-image", r.userHandler.UploadProfileImage)
	}

	preferencesGroup := api.Group("/preferences", r.authMiddleware.Authenticate)
	{
		preferencesGroup.GET("", r.preferenceHandler.GetPreferences)
		preferencesGroup.POST("", r.preferenceHandler.SavePreferences)
		preferencesGroup.PUT("", r.preferenceHandler.UpdatePreferences)
	}

	combinationsGroup := api.Group("/combinations", r.authMiddleware.Authenticate)
	{
		combinationsGroup.GET("", r.combinationHandler.ListCombinations)
		combinationsGroup.POST("", r.combinationHandler.CreateCombination)
		combinationsGroup.GET("/:id", r.combinationHandler.GetCombination)
		combinationsGroup.DELETE("/:id", r.combinationHandler.DeleteCombination)
		combinationsGroup.POST("/:id/images", r.combinationHandler.ReplaceImages)
	}
}
