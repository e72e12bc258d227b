// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strconv"

// Account is a stored credential record of one of the three partitions.
// Exactly one of the profile pointers is set for students and teachers; admins carry none.
type Account struct {
	ID             int             // Identifier within the account's partition.
	Role           Role            // Partition the record lives in.
	Login          string          // Case-sensitive login, unique within the partition.
	PasswordHash   string          // Hash produced by the role's hasher.
	IsDeleted      bool            // Soft-delete flag. Always false for admins.
	StudentProfile *StudentProfile // Set when Role is RoleStudent.
	TeacherProfile *TeacherProfile // Set when Role is RoleTeacher.
}

// StudentProfile holds data specific to ordinary users.
type StudentProfile struct {
	Name    string
	Surname string
	Email   string
}

// TeacherProfile holds data specific to teachers.
type TeacherProfile struct {
	Name     string
	Surname  string
	Email    string
	Degree   string
	Position string
}

// IsActive reports whether the account may authenticate.
func (a *Account) IsActive() bool {
	if !a.Role.HasSoftDelete() {
		return true
	}

	return !a.IsDeleted
}

// Principal returns the identity used to build token claims.
func (a *Account) Principal() Principal {
	return Principal{ID: a.ID, Role: a.Role}
}

// Principal is an authenticated identity. It is never persisted.
type Principal struct {
	ID   int
	Role Role
}

// Subject returns the identifier in the string form used as the token subject.
func (p Principal) Subject() string {
	return strconv.Itoa(p.ID)
}
