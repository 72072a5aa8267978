// Package middleware holds the API-only echo middlewares and the HTTP error handler.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bloodlink/internal/delivery/api/response"
	deliverycontext "bloodlink/internal/delivery/context"
	domainerrors "bloodlink/internal/domain/errors"
)

// ErrorMiddleware renders every handler error as the JSON failure body.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logServerError(c, err)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			m.logServerError(c, err)
			_ = response.InternalServerError(c)

			return
		}
		_ = response.Error(c, httpErr.Code, httpErrorCode(httpErr.Code), httpErrorMessage(httpErr), "")

		return
	}

	m.logServerError(c, err)
	_ = response.InternalServerError(c)
}

// logServerError logs through the request logger, which already carries request_id.
func (m *ErrorMiddleware) logServerError(c echo.Context, err error) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).ErrorContext(req.Context(), "Unhandled error",
		slog.String("error", fmt.Sprintf("%+v", err)),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)
}

func httpErrorMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		return msg
	}

	return http.StatusText(httpErr.Code)
}

func httpErrorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return domainerrors.ErrValidationFailed.ErrorCode()
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE"
	default:
		return "HTTP_ERROR"
	}
}
