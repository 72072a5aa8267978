package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodlink/config"
	deliverycontext "bloodlink/internal/delivery/context"
	domainerrors "bloodlink/internal/domain/errors"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "reuses caller id", incoming: "caller-123", reuse: true},
		{name: "generates when missing", incoming: "", reuse: false},
		{name: "replaces oversized id", incoming: strings.Repeat("x", maxRequestIDLength+1), reuse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

			var ctxID string
			var hasLogger bool
			e.GET("/", func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return c.NoContent(http.StatusNoContent)
			}, mw.Process)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, ctxID)
			assert.True(t, hasLogger)
			if tt.reuse {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	newServer := func(debug bool, buf *bytes.Buffer) *echo.Echo {
		logger := slog.New(slog.NewJSONHandler(buf, nil))
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		e.Use(NewRequestIDMiddleware(logger).Process)
		e.Use(NewLoggerMiddleware(logger, cfg).Handle)
		e.GET("/ok", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		e.GET("/conflict", func(c echo.Context) error {
			return domainerrors.ErrEmailAlreadyRegistered
		})

		return e
	}

	t.Run("logs with request id and route", func(t *testing.T) {
		var buf bytes.Buffer
		e := newServer(true, &buf)

		req := httptest.NewRequest(http.MethodGet, "/ok?x=1", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
		e.ServeHTTP(httptest.NewRecorder(), req)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "http request", line["msg"])
		assert.Equal(t, "INFO", line["level"])
		assert.Equal(t, "req-42", line["request_id"])
		assert.Equal(t, "/ok", line["route"])
		assert.Equal(t, "x=1", line["query"])
		assert.EqualValues(t, http.StatusOK, line["status"])
	})

	t.Run("uses the error status before it is written", func(t *testing.T) {
		var buf bytes.Buffer
		e := newServer(true, &buf)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/conflict", nil))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "WARN", line["level"])
		assert.EqualValues(t, http.StatusConflict, line["status"])
	})

	t.Run("silent when debug is off", func(t *testing.T) {
		var buf bytes.Buffer
		e := newServer(false, &buf)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Zero(t, buf.Len())
	})
}

type observation struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	observed []observation
}

func (f *fakeObserver) ObserveHTTPRequest(method, route string, statusCode int, _ time.Duration) {
	f.observed = append(f.observed, observation{method: method, route: route, status: statusCode})
}

func TestMetricsMiddleware(t *testing.T) {
	observer := &fakeObserver{}

	e := echo.New()
	e.Use(NewMetricsMiddleware(observer).Handle)
	e.GET("/api/donations/:id/pass", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.POST("/api/auth/login", func(c echo.Context) error {
		return domainerrors.ErrInvalidCredentials
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/donations/"+uuid.NewString()+"/pass", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/"+uuid.NewString(), nil))

	assert.Equal(t, []observation{
		{method: http.MethodGet, route: "/api/donations/:id/pass", status: http.StatusOK},
		{method: http.MethodPost, route: "/api/auth/login", status: http.StatusUnauthorized},
		{method: http.MethodGet, route: unmatchedRoute, status: http.StatusNotFound},
	}, observer.observed)
}
