// Package qrcode renders donation check-in passes as PNG QR codes.
package qrcode

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"

	"bloodlink/config"
	"bloodlink/internal/domain/service"
)

const (
	passType       = "donation_pass"
	passDateLayout = "2006-01-02"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// passPayload is the JSON text encoded in the QR code.
type passPayload struct {
	Type       string `json:"type"`
	DonationID string `json:"donation_id"`
	UserID     string `json:"user_id"`
	Date       string `json:"date"`
	BloodType  string `json:"blood_type"`
}

// NewQRCodeService builds the service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := 256, "M"
	if cfg != nil && cfg.QRCode != nil {
		size, level = cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel
	}

	return newQRCodeService(size, level)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateDonationPass renders the pass payload as a PNG image.
func (s *qrcodeService) GenerateDonationPass(pass service.DonationPass) ([]byte, error) {
	jsonData, err := json.Marshal(passPayload{
		Type:       passType,
		DonationID: pass.DonationID.String(),
		UserID:     pass.UserID.String(),
		Date:       pass.DonationDate.Format(passDateLayout),
		BloodType:  pass.BloodType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal donation pass")
	}

	pngBytes, err := qrcode.Encode(string(jsonData), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode QR code")
	}

	return pngBytes, nil
}

// ParseDonationPass decodes the text scanned from a pass.
func (s *qrcodeService) ParseDonationPass(qrData string) (*service.DonationPass, error) {
	var data passPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal donation pass")
	}

	if data.Type != passType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	donationID, err := uuid.Parse(data.DonationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse donation ID")
	}

	userID, err := uuid.Parse(data.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse user ID")
	}

	date, err := time.Parse(passDateLayout, data.Date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse donation date")
	}

	return &service.DonationPass{
		DonationID:   donationID,
		UserID:       userID,
		DonationDate: date,
		BloodType:    data.BloodType,
	}, nil
}
