package service

import (
	"time"

	"github.com/google/uuid"
)

// DonationPass is the payload encoded in a donation check-in QR code.
type DonationPass struct {
	DonationID   uuid.UUID
	UserID       uuid.UUID
	DonationDate time.Time
	BloodType    string
}

// QRCodeService defines the interface for donation pass QR code generation and parsing
type QRCodeService interface {
	// GenerateDonationPass renders the pass as a PNG QR code.
	GenerateDonationPass(pass DonationPass) ([]byte, error)

	// ParseDonationPass decodes the text payload scanned from a pass.
	ParseDonationPass(qrData string) (*DonationPass, error)
}
