package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodlink/internal/domain/service"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	t.Run("stored value wins", func(t *testing.T) {
		c := newEchoContext()
		c.Response().Header().Set(HeaderXRequestID, "from-header")
		SetRequestID(c, "stored")

		assert.Equal(t, "stored", GetRequestID(c))
	})

	t.Run("falls back to response header", func(t *testing.T) {
		c := newEchoContext()
		c.Response().Header().Set(HeaderXRequestID, "from-header")

		assert.Equal(t, "from-header", GetRequestID(c))
	})

	t.Run("generates a uuid", func(t *testing.T) {
		c := newEchoContext()

		_, err := uuid.Parse(GetRequestID(c))
		assert.NoError(t, err)
	})
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))

	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestIdentity(t *testing.T) {
	identity := service.Identity{UserID: uuid.New(), Email: "a@x.com"}

	c := newEchoContext()
	_, ok := GetIdentity(c)
	assert.False(t, ok)

	SetIdentity(c, identity)
	got, ok := GetIdentity(c)
	require.True(t, ok)
	assert.Equal(t, identity, got)

	_, ok = IdentityFromContext(context.Background())
	assert.False(t, ok)

	got, ok = IdentityFromContext(WithIdentity(context.Background(), identity))
	require.True(t, ok)
	assert.Equal(t, identity, got)
}
