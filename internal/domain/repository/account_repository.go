// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"reportsys/internal/domain/entity"
)

// ErrAccountNotFound is returned when no active account matches a lookup.
// It never leaves the use case layer; callers see a generic authentication failure instead.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is a single credential lookup over the three account partitions.
// Every partition is addressed by role, so the use case layer never touches a table directly.
type AccountRepository interface {
	// FindActiveByLogin returns the account with the exact login in the role's partition.
	// Soft-deleted records are excluded for roles that have a deletion flag.
	FindActiveByLogin(ctx context.Context, role entity.Role, login string) (*entity.Account, error)

	// Create inserts the account into the partition named by account.Role and sets its ID.
	Create(ctx context.Context, account *entity.Account) error
}
