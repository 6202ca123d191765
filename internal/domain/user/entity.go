package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, manages users and options
	RoleManager  Role = "manager"  // Organization-wide attendance reports
	RoleReporter Role = "reporter" // Records and reports for one group
	RoleUser     Role = "user"     // Regular member, sees own attendance only
)

// ValidRoles lists every role accepted at registration and update time.
var ValidRoles = []Role{RoleAdmin, RoleManager, RoleReporter, RoleUser}

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Honor        string
	Name         string
	Level        string
	Department   string
	Party        string
	Sex          string
	Birthday     time.Time
	Role         Role
	// Group is only meaningful for reporters; empty for other roles.
	Group     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin checks if the user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if the user is a manager or administrator
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// IsReporter checks if the user records attendance for a group
func (u *User) IsReporter() bool {
	return u.Role == RoleReporter
}

// CanManageUsers checks if the user may administer accounts and options
func (u *User) CanManageUsers() bool {
	return u.IsAdmin()
}
