// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"bloodlink/internal/delivery/api/middleware"
	"bloodlink/internal/delivery/api/router/handler"
	"bloodlink/internal/infra/metrics"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	DonationHandler *handler.DonationHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Gatherer        prometheus.Gatherer
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	donationHandler *handler.DonationHandler
	authMiddleware  *middleware.AuthMiddleware
	gatherer        prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		donationHandler: params.DonationHandler,
		authMiddleware:  params.AuthMiddleware,
		gatherer:        params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.gatherer)))

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	donationsGroup := api.Group("/donations")
	donationsGroup.Use(r.authMiddleware.Authenticate)
	{
		donationsGroup.POST("/schedule", r.donationHandler.ScheduleDonation)
		donationsGroup.GET("/my-donations", r.donationHandler.ListMyDonations)
		donationsGroup.GET("/all", r.donationHandler.ListAllDonations)
		donationsGroup.GET("/:id/pass", r.donationHandler.DonationPass)
	}
}
