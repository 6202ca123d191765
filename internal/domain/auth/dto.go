package auth

import (
	"time"

	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/user"
	"github.com/rollcall-hq/rollcall-backend-go/internal/pkg/validator"
)

// RegisterRequest carries a self-service registration. The birthday is
// submitted as separate year/month/day dropdown values.
type RegisterRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Honor      string `json:"honor"`
	Name       string `json:"name"`
	Level      string `json:"level"`
	Department string `json:"department"`
	Party      string `json:"party"`
	Sex        string `json:"sex"`
	Role       string `json:"role"`
	Group      string `json:"group"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Day        int    `json:"day"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters (letters, digits, '.', '_', '-')",
		})
	}

	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	validRoles := make([]string, 0, len(user.ValidRoles))
	for _, role := range user.ValidRoles {
		validRoles = append(validRoles, string(role))
	}
	if !validator.IsInSlice(r.Role, validRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, manager, reporter, user",
		})
	} else if r.Role == string(user.RoleReporter) && validator.IsEmpty(r.Group) {
		errs = append(errs, validator.ValidationError{
			Field:   "group",
			Message: "group is required for reporter accounts",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Day < 1 || r.Day > 31 {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be between 1 and 31",
		})
	}
	if r.Year < 1900 || r.Year > time.Now().Year() {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Birthday assembles the dropdown values into a calendar date.
func (r *RegisterRequest) Birthday() time.Time {
	return time.Date(r.Year, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC)
}

// LoginRequest carries username/password credentials
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AuthResponse is returned on successful register/login/refresh
type AuthResponse struct {
	AccessToken           string            `json:"access_token"`
	AccessTokenExpiresIn  int64             `json:"access_token_expires_in"`
	RefreshToken          string            `json:"refresh_token,omitempty"`
	RefreshTokenExpiresIn int64             `json:"refresh_token_expires_in,omitempty"`
	User                  user.UserResponse `json:"user"`
}

// RegistrationOptions is the vocabulary payload backing the registration
// form dropdowns.
type RegistrationOptions struct {
	Honors      []string `json:"honors"`
	Levels      []string `json:"levels"`
	Departments []string `json:"departments"`
	Parties     []string `json:"parties"`
	Sexes       []string `json:"sexes"`
	Months      []string `json:"months"`
	Years       []int    `json:"years"`
	Days        []int    `json:"days"`
	Groups      []string `json:"groups"`
}
