package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/attendance"
	"github.com/rollcall-hq/rollcall-backend-go/internal/handler/http/response"
	"github.com/rollcall-hq/rollcall-backend-go/internal/pkg/validator"
)

type AttendanceHandler struct {
	recordService attendance.RecordService
}

func NewAttendanceHandler(recordService attendance.RecordService) *AttendanceHandler {
	return &AttendanceHandler{recordService: recordService}
}

func (h *AttendanceHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	rec, err := h.recordService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", rec)
}

// ListMine returns the caller's own records. The window defaults to the
// last 30 days when start/end are omitted.
func (h *AttendanceHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -30)

	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, valid := validator.IsValidDate(raw)
		if !valid {
			response.BadRequest(w, "start must be in YYYY-MM-DD format", nil)
			return
		}
		start = parsed
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, valid := validator.IsValidDate(raw)
		if !valid {
			response.BadRequest(w, "end must be in YYYY-MM-DD format", nil)
			return
		}
		end = parsed
	}

	records, err := h.recordService.ListMine(r.Context(), userID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
