package context

import (
	"context"

	"github.com/labstack/echo/v4"

	"bloodlink/internal/domain/service"
)

// KeyIdentity is the key for storing the authenticated bearer identity.
const KeyIdentity ContextKey = "identity"

// SetIdentity stores the verified token identity in echo.Context.
func SetIdentity(c echo.Context, identity service.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the identity stored by the auth middleware.
func GetIdentity(c echo.Context) (service.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(service.Identity)

	return identity, ok
}

// WithIdentity returns a new context carrying the identity.
func WithIdentity(ctx context.Context, identity service.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// IdentityFromContext extracts the identity from standard context.Context.
func IdentityFromContext(ctx context.Context) (service.Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(service.Identity)

	return identity, ok
}
