package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates the bearer tokens that carry the
// customer id as their subject.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the given
	// customer id.
	GenerateAccessToken(customerID string, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
