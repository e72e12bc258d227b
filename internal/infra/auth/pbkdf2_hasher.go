package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"

	"reportsys/config"
	"reportsys/internal/domain/service"
)

const (
	defaultPBKDF2Iterations = 100_000
	defaultPBKDF2SaltLength = 16
	defaultPBKDF2KeyLength  = 32
)

type pbkdf2Hasher struct {
	iterations int
	saltLength int
	keyLength  int
}

// NewPBKDF2Hasher returns a PBKDF2-HMAC-SHA256 hasher.
func NewPBKDF2Hasher(cfg *config.PBKDF2Config) service.PasswordHasher {
	h := &pbkdf2Hasher{
		iterations: defaultPBKDF2Iterations,
		saltLength: defaultPBKDF2SaltLength,
		keyLength:  defaultPBKDF2KeyLength,
	}
	if cfg != nil {
		if cfg.Iterations > 0 {
			h.iterations = cfg.Iterations
		}
		if cfg.SaltLength > 0 {
			h.saltLength = cfg.SaltLength
		}
		if cfg.KeyLength > 0 {
			h.keyLength = cfg.KeyLength
		}
	}

	return h
}

// Hash output format: $pbkdf2-sha256$i=<iterations>$<salt>$<key>
func (h *pbkdf2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "generate pbkdf2 salt")
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, h.keyLength, sha256.New)

	return fmt.Sprintf(
		"$pbkdf2-sha256$i=%d$%s$%s",
		h.iterations,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *pbkdf2Hasher) Check(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[1] != "pbkdf2-sha256" {
		return false
	}

	var iterations int
	if _, err := fmt.Sscanf(parts[2], "i=%d", &iterations); err != nil || iterations <= 0 {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(key) == 0 {
		return false
	}

	other := pbkdf2.Key([]byte(password), salt, iterations, len(key), sha256.New)

	return subtle.ConstantTimeCompare(key, other) == 1
}

func (h *pbkdf2Hasher) Scheme() string {
	return "pbkdf2-sha256"
}
