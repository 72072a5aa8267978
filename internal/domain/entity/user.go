// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered donor account. Email is the login identifier and is unique as stored.
type User struct {
	ID           uuid.UUID // Store-generated identifier.
	Name         string    // Display name.
	Email        string    // Login identifier, compared case-sensitively.
	Phone        string    // Contact phone number.
	BloodType    BloodType // Declared blood group.
	PasswordHash string    // bcrypt digest; the plaintext is never kept.
	CreatedAt    time.Time
}

// UserView is the public projection of a User. It never carries the password digest.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	BloodType BloodType `json:"bloodType"`
}

// View returns the public projection of the user.
func (u *User) View() *UserView {
	if u == nil {
		return nil
	}

	return &UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		BloodType: u.BloodType,
	}
}
