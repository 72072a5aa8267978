// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"bloodlink/internal/delivery/api/response"
	"bloodlink/internal/usecase"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the account endpoints under /api/auth.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterUser handles POST /api/auth/register.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return bindingError(c.Request().Context(), h.logger, err, "Invalid registration input")
	}

	output, err := h.userUC.RegisterUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Auth(c, http.StatusCreated, "User registered successfully", output.Token, output.User)
}

// Login handles POST /api/auth/login.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return bindingError(c.Request().Context(), h.logger, err, "Invalid login input")
	}

	output, err := h.userUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Auth(c, http.StatusOK, "Login successful", output.Token, output.User)
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so the client
// discards its copy and nothing changes on the server.
func (h *UserHandler) Logout(c echo.Context) error {
	return response.Message(c, http.StatusOK, "Logged out successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true, "status": "ok"})
}
