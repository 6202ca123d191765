package user

import (
	"github.com/rollcall-hq/rollcall-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Honor      string `json:"honor"`
	Name       string `json:"name"`
	Level      string `json:"level"`
	Department string `json:"department"`
	Party      string `json:"party"`
	Sex        string `json:"sex"`
	Birthday   string `json:"birthday"`
	Role       string `json:"role"`
	Group      string `json:"group,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// ToResponse converts a User entity into its API shape.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Honor:      u.Honor,
		Name:       u.Name,
		Level:      u.Level,
		Department: u.Department,
		Party:      u.Party,
		Sex:        u.Sex,
		Birthday:   u.Birthday.Format("2006-01-02"),
		Role:       string(u.Role),
		Group:      u.Group,
		CreatedAt:  u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  u.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// UpdateUserRequest represents an administrative profile update
type UpdateUserRequest struct {
	ID         string  `json:"id"`
	Name       *string `json:"name,omitempty"`
	Level      *string `json:"level,omitempty"`
	Department *string `json:"department,omitempty"`
	Party      *string `json:"party,omitempty"`
	Role       *string `json:"role,omitempty"`
	Group      *string `json:"group,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Role != nil {
		validRoles := make([]string, 0, len(ValidRoles))
		for _, role := range ValidRoles {
			validRoles = append(validRoles, string(role))
		}
		if !validator.IsInSlice(*r.Role, validRoles) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be one of: admin, manager, reporter, user",
			})
		} else if *r.Role == string(RoleReporter) && (r.Group == nil || validator.IsEmpty(*r.Group)) {
			errs = append(errs, validator.ValidationError{
				Field:   "group",
				Message: "group is required for reporter accounts",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ChangePasswordRequest represents an administrative password reset
type ChangePasswordRequest struct {
	ID          string `json:"id"`
	NewPassword string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if len(r.NewPassword) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "password must be at least 6 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
