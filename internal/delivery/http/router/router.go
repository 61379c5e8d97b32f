// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"forkful/internal/delivery/http/middleware"
	"forkful/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	RecipeHandler  *handler.RecipeHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	recipeHandler  *handler.RecipeHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		recipeHandler:  params.RecipeHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Anonymous routes; check_session inspects the cookie itself so that a
	// missing session answers with the 401 shape rather than a middleware abort.
	e.POST("/signup", r.authHandler.Signup)
	e.POST("/login", r.authHandler.Login)
	e.GET("/check_session", r.authHandler.CheckSession)

	// Routes that require an authenticated session
	e.DELETE("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)

	recipeGroup := e.Group("/recipes")
	recipeGroup.Use(r.authMiddleware.Authenticate)
	{
		recipeGroup.GET("", r.recipeHandler.List)
		recipeGroup.POST("", r.recipeHandler.Create)
	}
}
