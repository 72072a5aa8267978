// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"bloodlink/config"
	"bloodlink/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.Auth == nil || cfg.Auth.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	return &jwtService{
		secret: []byte(cfg.Auth.JWTSecret),
		ttl:    cfg.Auth.TokenTTL,
		now:    time.Now,
	}, nil
}

// IssueToken signs a token for the identity using the service clock.
func (s *jwtService) IssueToken(identity service.Identity) (string, error) {
	return SignToken(identity, s.secret, s.ttl, s.now())
}

// VerifyToken validates the token against the service secret and clock.
func (s *jwtService) VerifyToken(token string) (*service.Claims, error) {
	return ParseToken(token, s.secret, s.now())
}

// TokenTTL returns the configured lifetime of issued tokens.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}

// SignToken mints an HS256 token carrying the identity, iat = issuedAt and exp = issuedAt + ttl.
func SignToken(identity service.Identity, secret []byte, ttl time.Duration, issuedAt time.Time) (string, error) {
	claims := &service.Claims{
		UserID: identity.UserID,
		Email:  identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ParseToken verifies signature and expiry as of now and returns the claims.
// The returned error wraps exactly one of the service.ErrToken* sentinels.
func ParseToken(tokenString string, secret []byte, now time.Time) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Only HS256 is accepted; "none" and asymmetric algorithms count as malformed.
		if token.Method != jwt.SigningMethodHS256 {
			return nil, service.ErrTokenMalformed
		}

		return secret, nil
	},
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, classifyTokenError(err)
	}

	if claims.UserID == uuid.Nil || claims.Email == "" {
		return nil, errors.Wrap(service.ErrTokenMalformed, "token is missing identity claims")
	}

	return claims, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, service.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return errors.Wrap(service.ErrTokenSignatureInvalid, err.Error())
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	default:
		// Remaining claim failures (iat in the future, missing exp) are treated as malformed.
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	}
}
