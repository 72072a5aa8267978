package repository

import (
	"context"
	"errors"

	"bloodlink/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDonationNotFound is returned when a donation does not exist.
var ErrDonationNotFound = errors.New("donation not found")

// DonationRepository persists donation appointments.
type DonationRepository interface {
	// Create inserts the donation and fills in ID and CreatedAt.
	Create(ctx context.Context, donation *entity.Donation) error

	// FindByID retrieves a donation by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error)

	// ListByUser returns the user's donations, latest donation date first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Donation, error)

	// ListAll returns every donation with the owner's name, latest donation date first.
	ListAll(ctx context.Context) ([]*entity.Donation, error)
}
