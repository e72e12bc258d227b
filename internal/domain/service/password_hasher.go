// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"fmt"

	"reportsys/internal/domain/entity"
)

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// A malformed hash never matches.
	Check(password, hash string) bool

	// Scheme names the algorithm, e.g. "bcrypt".
	Scheme() string
}

// HasherTable binds each account role to the hashing strategy its partition uses.
type HasherTable map[entity.Role]PasswordHasher

// For returns the hasher bound to role.
func (t HasherTable) For(role entity.Role) (PasswordHasher, error) {
	hasher, ok := t[role]
	if !ok || hasher == nil {
		return nil, fmt.Errorf("no password hasher configured for role %s", role)
	}

	return hasher, nil
}
