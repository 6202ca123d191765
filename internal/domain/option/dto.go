package option

import (
	"github.com/rollcall-hq/rollcall-backend-go/internal/pkg/validator"
)

// OptionResponse represents an option entry in API responses
type OptionResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	CreatedAt string `json:"created_at"`
}

func (o *Option) ToResponse() OptionResponse {
	return OptionResponse{
		ID:        o.ID,
		Type:      string(o.Type),
		Value:     o.Value,
		CreatedAt: o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// CreateOptionRequest adds a value to one of the vocabularies
type CreateOptionRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (r *CreateOptionRequest) Validate() error {
	var errs validator.ValidationErrors

	validTypes := make([]string, 0, len(ValidTypes))
	for _, t := range ValidTypes {
		validTypes = append(validTypes, string(t))
	}
	if !validator.IsInSlice(r.Type, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: honor, level, department, party, group",
		})
	}

	if validator.IsEmpty(r.Value) {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateOptionRequest renames an existing option value
type UpdateOptionRequest struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

func (r *UpdateOptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.Value) {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
