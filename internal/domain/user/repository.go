package user

import (
	"context"
)

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	// Create inserts a new user
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByUsername retrieves a user by username, for login and
	// duplicate checks
	GetByUsername(ctx context.Context, username string) (User, error)

	// List retrieves every user, ordered by display name
	List(ctx context.Context) ([]User, error)

	// ListByGroup retrieves the members of a reporting unit: users with
	// attendance recorded under the group, plus users currently assigned
	// to it. Members without any records yet are included.
	ListByGroup(ctx context.Context, group string) ([]User, error)

	// SearchByName retrieves users whose display name contains the
	// search text, case-insensitively
	SearchByName(ctx context.Context, text string) ([]User, error)

	// Update persists profile, role and group changes
	Update(ctx context.Context, u User) error

	// UpdatePassword replaces a user's password hash
	UpdatePassword(ctx context.Context, id string, passwordHash string) error

	// Delete removes a user. Attendance records referencing the user are
	// kept with their recorded data intact (orphaned, not deleted).
	Delete(ctx context.Context, id string) error

	// ExistsWithOptionValue reports whether any user references the given
	// vocabulary value in honor, level, department, party or group.
	ExistsWithOptionValue(ctx context.Context, value string) (bool, error)
}
