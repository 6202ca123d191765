package attendance

import (
	"time"

	"github.com/rollcall-hq/rollcall-backend-go/internal/pkg/validator"
)

// RecordRequest marks one user's status for one calendar day.
type RecordRequest struct {
	UserID string `json:"user_id"`
	Date   string `json:"date"` // YYYY-MM-DD
	Status string `json:"status"`

	// Group is the reporting unit the observation belongs to. Reporters
	// always record under their own group; admins and managers may name
	// one explicitly, defaulting to the subject's current group.
	Group string `json:"group,omitempty"`
}

func (r *RecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	validStatuses := make([]string, 0, len(ValidStatuses))
	for _, s := range ValidStatuses {
		validStatuses = append(validStatuses, string(s))
	}
	if !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedDate returns the record date at day granularity.
func (r *RecordRequest) ParsedDate() time.Time {
	date, _ := validator.IsValidDate(r.Date)
	return date
}

// RecordResponse represents a stored record in API responses
type RecordResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name,omitempty"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Group      string `json:"group"`
	RecordedBy string `json:"recorded_by"`
	CreatedAt  string `json:"created_at"`
}

func (rec *Record) ToResponse() RecordResponse {
	resp := RecordResponse{
		ID:         rec.ID,
		UserID:     rec.UserID,
		Date:       rec.Date.Format("2006-01-02"),
		Status:     string(rec.Status),
		Group:      rec.Group,
		RecordedBy: rec.RecordedBy,
		CreatedAt:  rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if rec.UserName != nil {
		resp.UserName = *rec.UserName
	}
	return resp
}
