package entity

import "strconv"

// Role identifies which account partition a credential belongs to.
// The numeric value is the ordinal written into the token's role claim.
type Role int

const (
	// RoleStudent is the ordinary user role.
	RoleStudent Role = iota
	// RoleTeacher is the first privileged role.
	RoleTeacher
	// RoleAdmin is the second privileged role.
	RoleAdmin
)

// LoginPriority is the order in which partitions are consulted during login.
var LoginPriority = []Role{RoleStudent, RoleTeacher, RoleAdmin}

// String returns the lower-case name of the role.
func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "student"
	case RoleTeacher:
		return "teacher"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown(" + strconv.Itoa(int(r)) + ")"
	}
}

// Ordinal returns the role's integer value in string form, as used in token claims.
func (r Role) Ordinal() string {
	return strconv.Itoa(int(r))
}

// IsValid checks if the Role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsPrivileged reports whether the role may only be created through privileged registration.
func (r Role) IsPrivileged() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// HasSoftDelete reports whether records of this role carry a deletion flag.
// Admin records have no such column and are always considered active.
func (r Role) HasSoftDelete() bool {
	return r == RoleStudent || r == RoleTeacher
}

// RoleFromOrdinal parses the string form produced by Ordinal.
func RoleFromOrdinal(s string) (Role, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	role := Role(n)

	return role, role.IsValid()
}
