package entity

import (
	"time"

	"github.com/google/uuid"
)

// DonationStatus tracks an appointment through the donation site's workflow.
type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusConfirmed DonationStatus = "confirmed"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusCancelled DonationStatus = "cancelled"
)

// String returns the string representation of the DonationStatus.
func (s DonationStatus) String() string {
	return string(s)
}

// Donation is a scheduled donation appointment owned by a user.
// Contact fields are captured per appointment and may differ from the owner's profile.
type Donation struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	UserName     string // Owner's account name; only populated by listings that join users.
	Name         string
	Email        string
	Phone        string
	DonationDate time.Time // Calendar date, time-of-day is zero.
	BloodType    BloodType
	Status       DonationStatus
	CreatedAt    time.Time
}
