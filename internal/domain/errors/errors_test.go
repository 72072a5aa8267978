package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithMessageKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithMessage("Passwords do not match")

	assert.Equal(t, "Passwords do not match", err.Error())
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrEmailAlreadyRegistered))
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
}

func TestBaseError_WithDetailsKeepsMessage(t *testing.T) {
	err := ErrValidationFailed.WithMessage("Invalid login input").WithDetails("Unmarshal type error")

	assert.Equal(t, "Invalid login input", err.Message())
	assert.Equal(t, "Unmarshal type error", err.Details())
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_WrapMessagePreservesChain(t *testing.T) {
	err := ErrEmailAlreadyRegistered.WrapMessage("registration failed")

	assert.True(t, errors.Is(err, ErrEmailAlreadyRegistered))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "Email already registered", appErr.Message())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create user")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to create user", err.Details())
	assert.Contains(t, err.Error(), "database execution failed")
}

func TestIsServerError(t *testing.T) {
	assert.True(t, IsServerError(errors.New("boom")))
	assert.True(t, IsServerError(ErrPasswordHashFailed))
	assert.False(t, IsServerError(ErrInvalidCredentials.WrapMessage("login failed")))
	assert.False(t, IsServerError(ErrValidationFailed))
}
