package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token verification failures. Callers that only need "valid or not" can treat them alike.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
)

// Identity is what a session token asserts about its bearer.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Claims defines the custom claims for the session token.
// Issued-at and expiry travel in the registered "iat" and "exp" claims.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// Identity returns the bearer identity carried by the claims.
func (c *Claims) Identity() Identity {
	return Identity{UserID: c.UserID, Email: c.Email}
}

// TokenService defines the interface for minting and verifying stateless session tokens.
type TokenService interface {
	// IssueToken signs a token for the identity that expires after TokenTTL.
	IssueToken(identity Identity) (string, error)

	// VerifyToken checks signature and expiry and returns the embedded claims.
	// Errors wrap ErrTokenMalformed, ErrTokenSignatureInvalid or ErrTokenExpired.
	VerifyToken(token string) (*Claims, error)

	// TokenTTL returns the lifetime of issued tokens.
	TokenTTL() time.Duration
}
