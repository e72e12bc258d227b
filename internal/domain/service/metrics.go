package service

import "reportsys/internal/domain/entity"

// Outcome labels for account metrics.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeError   = "error"
)

// AccountMetrics records the results of account operations.
type AccountMetrics interface {
	// LoginAttempt records a login. role is nil when no partition matched.
	LoginAttempt(role *entity.Role, outcome string)

	// Registration records a registration attempt for role.
	Registration(role entity.Role, outcome string)
}
