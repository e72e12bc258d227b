package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"

	"reportsys/config"
	"reportsys/internal/domain/service"
)

// Argon2Params defines the memory and CPU cost factors for Argon2id.
type Argon2Params struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params are used for any zero field of the configured parameters.
var DefaultArgon2Params = Argon2Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

type argon2Hasher struct {
	params Argon2Params
}

// NewArgon2Hasher returns an Argon2id hasher producing PHC-formatted strings.
func NewArgon2Hasher(cfg *config.Argon2Config) service.PasswordHasher {
	params := DefaultArgon2Params
	if cfg != nil {
		if cfg.Memory > 0 {
			params.Memory = cfg.Memory
		}
		if cfg.Iterations > 0 {
			params.Iterations = cfg.Iterations
		}
		if cfg.Parallelism > 0 {
			params.Parallelism = cfg.Parallelism
		}
		if cfg.SaltLength > 0 {
			params.SaltLength = cfg.SaltLength
		}
		if cfg.KeyLength > 0 {
			params.KeyLength = cfg.KeyLength
		}
	}

	return &argon2Hasher{params: params}
}

// Hash derives an Argon2id key with a fresh random salt.
// Output format: $argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "generate argon2 salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Iterations, h.params.Memory, h.params.Parallelism, h.params.KeyLength)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Iterations, h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Check re-derives the key with the parameters stored in the hash.
func (h *argon2Hasher) Check(password, encoded string) bool {
	params, salt, key, err := decodeArgon2Hash(encoded)
	if err != nil {
		return false
	}

	other := argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)

	return subtle.ConstantTimeCompare(key, other) == 1
}

func (h *argon2Hasher) Scheme() string {
	return "argon2id"
}

func decodeArgon2Hash(encoded string) (*Argon2Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, nil, errors.New("malformed argon2id hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, nil, errors.Wrap(err, "parse argon2 version")
	}
	if version != argon2.Version {
		return nil, nil, nil, errors.Errorf("incompatible argon2 version %d", version)
	}

	params := &Argon2Params{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &params.Parallelism); err != nil {
		return nil, nil, nil, errors.Wrap(err, "parse argon2 parameters")
	}
	if params.Memory == 0 || params.Iterations == 0 || params.Parallelism == 0 {
		return nil, nil, nil, errors.New("argon2 cost parameters must be positive")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "decode argon2 salt")
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "decode argon2 key")
	}
	if len(key) == 0 {
		return nil, nil, nil, errors.New("empty argon2 key")
	}
	params.KeyLength = uint32(len(key))

	return params, salt, key, nil
}
