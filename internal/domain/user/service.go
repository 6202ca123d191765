package user

import (
	"context"
)

// UserService defines administrative user management operations
type UserService interface {
	// List retrieves all users without credential material
	List(ctx context.Context) ([]UserResponse, error)

	// Get retrieves a single user by ID
	Get(ctx context.Context, id string) (UserResponse, error)

	// Update applies profile, role and group changes
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// ChangePassword resets a user's password
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// Delete removes a user account, orphaning their attendance records
	Delete(ctx context.Context, id string) error
}
