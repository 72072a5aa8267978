package handler

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "bloodlink/internal/delivery/context"
	domainerrors "bloodlink/internal/domain/errors"
)

// bindingError reports a body that echo could not decode as a validation
// failure. The decoder's description travels as the error details.
func bindingError(ctx context.Context, logger *slog.Logger, bindErr error, message string) error {
	appErr := domainerrors.ErrValidationFailed.WithMessage(message)

	var httpErr *echo.HTTPError
	if errors.As(bindErr, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			appErr = appErr.WithDetails(msg)
		}
	}

	deliverycontext.GetLoggerOrDefault(ctx, logger).DebugContext(ctx, "Request body rejected",
		slog.String("error", bindErr.Error()),
	)

	return errors.WithStack(appErr)
}
