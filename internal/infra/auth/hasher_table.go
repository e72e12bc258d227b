package auth

import (
	"reportsys/config"
	"reportsys/internal/domain/entity"
	"reportsys/internal/domain/service"

	"github.com/pkg/errors"
)

// NewHasherTable builds the role-to-hasher strategy table from the hashing config.
func NewHasherTable(cfg *config.Config) (service.HasherTable, error) {
	hashing := cfg.Hashing
	if hashing == nil {
		hashing = &config.HashingConfig{
			Student: config.SchemeBcrypt,
			Teacher: config.SchemeArgon2id,
			Admin:   config.SchemePBKDF2,
		}
	}

	table := service.HasherTable{}
	for role, scheme := range map[entity.Role]string{
		entity.RoleStudent: hashing.Student,
		entity.RoleTeacher: hashing.Teacher,
		entity.RoleAdmin:   hashing.Admin,
	} {
		hasher, err := newHasher(scheme, hashing)
		if err != nil {
			return nil, errors.Wrapf(err, "hasher for role %s", role)
		}
		table[role] = hasher
	}

	return table, nil
}

func newHasher(scheme string, hashing *config.HashingConfig) (service.PasswordHasher, error) {
	switch scheme {
	case config.SchemeBcrypt:
		return NewBcryptHasher(hashing.BcryptCost), nil
	case config.SchemeArgon2id:
		return NewArgon2Hasher(hashing.Argon2), nil
	case config.SchemePBKDF2:
		return NewPBKDF2Hasher(hashing.PBKDF2), nil
	default:
		return nil, errors.Errorf("unknown hashing scheme: %q", scheme)
	}
}
