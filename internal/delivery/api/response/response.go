// Package response renders the JSON bodies returned by the API.
package response

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bloodlink/internal/domain/entity"
	"bloodlink/internal/util"
)

// MessageResponse is the body of a success with nothing to return but a message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthResponse is returned by registration and login.
type AuthResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    *entity.UserView `json:"user"`
}

// DonationResponse wraps a single donation.
type DonationResponse struct {
	Success  bool          `json:"success"`
	Message  string        `json:"message,omitempty"`
	Donation *DonationView `json:"donation"`
}

// DonationsResponse wraps a donation listing. Donations is never null.
type DonationsResponse struct {
	Success   bool            `json:"success"`
	Donations []*DonationView `json:"donations"`
}

// ErrorResponse is the failure body shared by every endpoint.
type ErrorResponse struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Error   *ErrorInfo `json:"error"`
}

// ErrorInfo carries the machine-readable category of a failure.
type ErrorInfo struct {
	Code    string `json:"code"`              // e.g. "VALIDATION_FAILED"
	Details string `json:"details,omitempty"` // only for 4xx responses
}

// DonationView is the wire form of a donation.
type DonationView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	BloodType string    `json:"bloodType"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewDonationView converts a donation entity for output.
func NewDonationView(d *entity.Donation) *DonationView {
	if d == nil {
		return nil
	}

	return &DonationView{
		ID:        d.ID,
		UserID:    d.UserID,
		UserName:  d.UserName,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Date:      util.FormatDate(d.DonationDate),
		BloodType: d.BloodType.String(),
		Status:    d.Status.String(),
		CreatedAt: d.CreatedAt,
	}
}

func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Success: true, Message: message})
}

func Auth(c echo.Context, statusCode int, message, token string, user *entity.User) error {
	return c.JSON(statusCode, AuthResponse{
		Success: true,
		Message: message,
		Token:   token,
		User:    user.View(),
	})
}

func Donation(c echo.Context, statusCode int, message string, donation *entity.Donation) error {
	return c.JSON(statusCode, DonationResponse{
		Success:  true,
		Message:  message,
		Donation: NewDonationView(donation),
	})
}

func Donations(c echo.Context, donations []*entity.Donation) error {
	views := make([]*DonationView, 0, len(donations))
	for _, d := range donations {
		views = append(views, NewDonationView(d))
	}

	return c.JSON(http.StatusOK, DonationsResponse{Success: true, Donations: views})
}

// PNG writes raw image bytes.
func PNG(c echo.Context, filename string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	c.Response().Header().Set("Cache-Control", "no-store")

	return c.Blob(http.StatusOK, "image/png", data)
}

// Error writes a failure body. Details are dropped for 5xx and auth failures.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = ""
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Server error", "")
}
