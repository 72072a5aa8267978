package usecase

import (
	"context"

	"github.com/google/uuid"

	"bloodlink/internal/domain/entity"
)

// ScheduleDonationInput is the donation reservation form.
type ScheduleDonationInput struct {
	Name      string `json:"name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,max=255"`
	Phone     string `json:"phone" validate:"required,max=32"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	BloodType string `json:"bloodType" validate:"required,bloodtype"`
}

// DonationPassOutput is a rendered check-in pass.
type DonationPassOutput struct {
	Donation    *entity.Donation
	PNG         []byte
	ContentType string
}

// DonationUsecase covers donation scheduling for authenticated users.
type DonationUsecase interface {
	ScheduleDonation(ctx context.Context, userID uuid.UUID, input *ScheduleDonationInput) (*entity.Donation, error)
	ListMyDonations(ctx context.Context, userID uuid.UUID) ([]*entity.Donation, error)
	ListAllDonations(ctx context.Context) ([]*entity.Donation, error)
	DonationPass(ctx context.Context, userID, donationID uuid.UUID) (*DonationPassOutput, error)
}
