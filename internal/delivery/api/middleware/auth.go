package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "bloodlink/internal/delivery/context"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/service"
)

// Rejection reasons recorded on bloodlink_tokens_rejected_total.
const (
	RejectMissing   = "missing"
	RejectScheme    = "scheme"
	RejectMalformed = "malformed"
	RejectSignature = "signature"
	RejectExpired   = "expired"
)

const bearerPrefix = "Bearer "

// AuthMiddleware guards routes with a bearer session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	metrics  service.MetricsRecorder
	logger   *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

// Authenticate verifies the token and stores its identity on both the echo
// context and the request context. Every failure is the same 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return m.reject(c, RejectMissing, nil)
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		tokenString = strings.TrimSpace(tokenString)
		if !found || tokenString == "" {
			return m.reject(c, RejectScheme, nil)
		}

		claims, err := m.tokenSvc.VerifyToken(tokenString)
		if err != nil {
			return m.reject(c, rejectReason(err), err)
		}

		identity := claims.Identity()
		deliverycontext.SetIdentity(c, identity)

		ctx := deliverycontext.WithIdentity(c.Request().Context(), identity)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context, reason string, cause error) error {
	m.metrics.RecordTokenRejected(reason)

	attrs := []any{slog.String("reason", reason), slog.String("path", c.Request().URL.Path)}
	if cause != nil {
		attrs = append(attrs, slog.String("error", cause.Error()))
	}
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
		DebugContext(c.Request().Context(), "Bearer token rejected", attrs...)

	return errors.WithStack(domainerrors.ErrUnauthorized)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return RejectExpired
	case errors.Is(err, service.ErrTokenSignatureInvalid):
		return RejectSignature
	default:
		return RejectMalformed
	}
}
