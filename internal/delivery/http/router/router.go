// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tavern/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	ProfileHandler *handler.ProfileHandler
	ArmoryHandler  *handler.ArmoryHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	profileHandler *handler.ProfileHandler
	armoryHandler  *handler.ArmoryHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		profileHandler: params.ProfileHandler,
		armoryHandler:  params.ArmoryHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/users")
	{
		userGroup.POST("/register", r.accountHandler.Register)
		userGroup.POST("/authenticate", r.accountHandler.Authenticate)
		userGroup.PUT("/password", r.accountHandler.ChangePassword)

		userGroup.GET("", r.accountHandler.ListUsers)
		userGroup.GET("/:id", r.accountHandler.GetUserByID)
		userGroup.GET("/by-username/:username", r.accountHandler.GetUserByUsername)

		userGroup.PUT("/:id/location", r.profileHandler.UpdateLocation)
		userGroup.PUT("/:id/email", r.profileHandler.UpdateEmail)
		userGroup.PUT("/:id/photo", r.profileHandler.UpdatePhoto)
	}

	e.POST("/characters", r.armoryHandler.CreateCharacter)
	e.POST("/weapons", r.armoryHandler.AttachWeapon)
}
