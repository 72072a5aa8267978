package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	domainerrors "bloodlink/internal/domain/errors"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantLogged bool
	}{
		{
			name:       "validation error keeps its message",
			err:        errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Passwords do not match"), "register"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"code":400,"message":"Passwords do not match","error":{"code":"VALIDATION_FAILED"}}`,
		},
		{
			name:       "conflict",
			err:        errors.WithStack(domainerrors.ErrEmailAlreadyRegistered),
			wantStatus: http.StatusConflict,
			wantBody:   `{"success":false,"code":409,"message":"Email already registered","error":{"code":"EMAIL_ALREADY_REGISTERED"}}`,
		},
		{
			name:       "invalid credentials",
			err:        errors.WithStack(domainerrors.ErrInvalidCredentials),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"code":401,"message":"Invalid email or password","error":{"code":"INVALID_CREDENTIALS"}}`,
		},
		{
			name:       "database failure is opaque",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "insert users"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"code":500,"message":"Server error","error":{"code":"DATABASE_EXECUTE_FAILED"}}`,
			wantLogged: true,
		},
		{
			name:       "unknown error is opaque",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"code":500,"message":"Server error","error":{"code":"INTERNAL_ERROR"}}`,
			wantLogged: true,
		},
		{
			name:       "echo not found",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"success":false,"code":404,"message":"Not Found","error":{"code":"NOT_FOUND"}}`,
		},
		{
			name:       "echo bad request",
			err:        echo.NewHTTPError(http.StatusBadRequest, "Syntax error: offset=8"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"code":400,"message":"Syntax error: offset=8","error":{"code":"VALIDATION_FAILED"}}`,
		},
		{
			name:       "validation failure with details",
			err:        errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("Invalid login input").WithDetails("Unmarshal type error")),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"code":400,"message":"Invalid login input","error":{"code":"VALIDATION_FAILED","details":"Unmarshal type error"}}`,
		},
		{
			name:       "echo error with non-string message",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, map[string]string{"limit": "100KB"}),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   `{"success":false,"code":413,"message":"Request Entity Too Large","error":{"code":"REQUEST_TOO_LARGE"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			mw := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			if tt.wantLogged {
				assert.Contains(t, logs.String(), `"path":"/api/auth/register"`)
				assert.Contains(t, logs.String(), `"method":"POST"`)
			} else {
				assert.Zero(t, logs.Len())
			}
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	mw := NewErrorMiddleware(newDiscardLogger())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")

	mw.HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
