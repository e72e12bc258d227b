package service

import (
	"github.com/golang-jwt/jwt/v5"

	"reportsys/internal/domain/entity"
)

// Claims defines the custom claims carried by issued tokens.
// The subject holds the account ID and Role holds the role ordinal, both as strings.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and reading signed tokens.
type TokenService interface {
	// Issue creates a signed, time-bounded token for the principal.
	Issue(principal entity.Principal) (string, error)

	// Parse validates a token and returns the principal it was issued for.
	Parse(tokenString string) (*entity.Principal, error)
}
