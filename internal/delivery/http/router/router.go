// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	accountGroup := api.Group("/account")
	{
		accountGroup.POST("", r.accountHandler.Register)
		accountGroup.GET("/list", r.accountHandler.ListAccounts)
		accountGroup.POST("/login", r.accountHandler.Login)
		accountGroup.POST("/authenticate", r.accountHandler.Authenticate)

		// Static segments before the :id wildcard
		accountGroup.GET("/me", r.accountHandler.Me, r.authMiddleware.Authenticate)
		accountGroup.GET("/:id", r.accountHandler.GetAccount)
	}
}
