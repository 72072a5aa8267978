package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"bloodlink/internal/domain/entity"
	"bloodlink/internal/infra/persistence/model"
)

func TestUserMapping(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Alex",
		Email:        "a@x.com",
		Phone:        "555-0100",
		BloodType:    entity.BloodTypeOPositive,
		PasswordHash: "$2a$10$digest",
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	userM := fromUserDomain(user)
	assert.Equal(t, "O+", userM.BloodType)
	assert.Equal(t, user, toUserDomain(userM))
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}

func TestDonationMapping(t *testing.T) {
	donationM := &model.DonationModel{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Name:         "Alex",
		Email:        "a@x.com",
		Phone:        "555-0100",
		DonationDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		BloodType:    "AB-",
		Status:       "pending",
	}

	donation := toDonationDomain(donationM, "Alex Account")
	assert.Equal(t, entity.BloodTypeABNegative, donation.BloodType)
	assert.Equal(t, entity.DonationStatusPending, donation.Status)
	assert.Equal(t, "Alex Account", donation.UserName)
	assert.Equal(t, donationM, fromDonationDomain(donation))
}
