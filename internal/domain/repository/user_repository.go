// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bloodlink/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the Credential Store port.
type UserRepository interface {
	// FindByEmail retrieves a single user by exact email match, including the password digest.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts the user and fills in ID and CreatedAt.
	// A duplicate email is reported as domainerrors.ErrEmailAlreadyRegistered.
	Create(ctx context.Context, user *entity.User) error
}
