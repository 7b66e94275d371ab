// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"
)

// Role represents a staff role looked up from the role directory.
type Role string

const (
	// RoleAdmin may administer purchases and device access.
	RoleAdmin Role = "admin"
	// RoleInstructor publishes courses.
	RoleInstructor Role = "instructor"
	// RoleTeacher takes attendance for enrolled classes.
	RoleTeacher Role = "teacher"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleTeacher:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RoleAssignment grants one role to one email.
type RoleAssignment struct {
	Email     string    `json:"email" yaml:"email"`
	Role      Role      `json:"role" yaml:"role"`
	CreatedAt time.Time `json:"createdAt" yaml:"-"`
}
