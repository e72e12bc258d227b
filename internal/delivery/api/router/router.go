// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"reportsys/internal/delivery/api/middleware"
	"reportsys/internal/delivery/api/router/handler"
	"reportsys/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
	Gatherer       prometheus.Gatherer
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
	gatherer       prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
		gatherer:       params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))

	accountGroup := e.Group("/api/account")
	{
		accountGroup.POST("/login", r.accountHandler.Login)
		accountGroup.POST("/register/student", r.accountHandler.RegisterStudent)

		// Only admins may create teachers and other admins.
		accountGroup.POST("/register/privileged", r.accountHandler.RegisterTeacherOrAdmin,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleAdmin),
		)
	}
}
