package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"reportsys/config"
	"reportsys/internal/domain/entity"
	"reportsys/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	key    []byte        // UTF-8 bytes of the shared secret.
	issuer string        // Used as both issuer and audience.
	ttl    time.Duration // Token lifetime.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.JwtKey == "" {
		return nil, errors.New("jwt key must be provided")
	}
	if cfg.Auth.JwtIssuer == "" {
		return nil, errors.New("jwt issuer must be provided")
	}
	if cfg.Auth.JwtExpireDays <= 0 {
		return nil, errors.New("jwt expiry must be a positive number of days")
	}

	return &jwtService{
		key:    []byte(cfg.Auth.JwtKey),
		issuer: cfg.Auth.JwtIssuer,
		ttl:    time.Duration(cfg.Auth.JwtExpireDays) * 24 * time.Hour,
		now:    time.Now,
	}, nil
}

// Issue signs an HS256 token whose subject is the principal ID and whose role claim is the role ordinal.
func (s *jwtService) Issue(principal entity.Principal) (string, error) {
	now := s.now()
	claims := service.Claims{
		Role: principal.Role.Ordinal(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.Subject(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.issuer},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Parse verifies signature, algorithm, issuer, audience and expiry.
func (s *jwtService) Parse(tokenString string) (*entity.Principal, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}

	role, ok := entity.RoleFromOrdinal(claims.Role)
	if !ok {
		return nil, errors.Errorf("invalid role claim %q", claims.Role)
	}

	return &entity.Principal{ID: id, Role: role}, nil
}
