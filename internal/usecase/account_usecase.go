// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"reportsys/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Login    string
	Password string
}

// RegisterStudentInput defines the data required to register an ordinary user.
type RegisterStudentInput struct {
	Name     string
	Surname  string
	Email    string
	Login    string
	Password string
}

// RegisterPrivilegedInput defines the data required to register a teacher or an admin.
// Profile fields are required for teachers and ignored for admins.
type RegisterPrivilegedInput struct {
	Role     entity.Role
	Name     string
	Surname  string
	Email    string
	Degree   string
	Position string
	Login    string
	Password string
}

// --- Output DTOs ---

// LoginOutput carries the issued token.
type LoginOutput struct {
	Token string `json:"token"`
}

// RegisterOutput identifies the created account.
type RegisterOutput struct {
	AccountID int         `json:"id"`
	Role      entity.Role `json:"role"`
	Login     string      `json:"login"`
}

// AccountUsecase defines login and registration across all account partitions.
type AccountUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RegisterStudent(ctx context.Context, input *RegisterStudentInput) (*RegisterOutput, error)
	RegisterTeacherOrAdmin(ctx context.Context, input *RegisterPrivilegedInput) (*RegisterOutput, error)
}
