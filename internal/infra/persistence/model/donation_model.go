package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationModel mirrors the 'donations' table. UserID references users.id.
type DonationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(32);not null"`
	DonationDate time.Time `gorm:"type:date;not null"`
	BloodType    string    `gorm:"column:blood_type;type:varchar(3);not null"`
	Status       string    `gorm:"type:varchar(16);not null;default:pending"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonationModel) TableName() string {
	return "donations"
}

// DonationWithOwnerModel is a donation row joined with its owner's account name.
type DonationWithOwnerModel struct {
	DonationModel `gorm:"embedded"`

	UserName string `gorm:"column:user_name"`
}
